package board

// Stage is a pipeline column name.
type Stage string

const (
	StageNew         Stage = "New"
	StageContacted   Stage = "Contacted"
	StageVisit       Stage = "Visit"
	StageNegotiation Stage = "Negotiation"
	StageWon         Stage = "Won"
	StageLost        Stage = "Lost"
)

// Stages lists the pipeline columns in display order.
var Stages = []Stage{
	StageNew,
	StageContacted,
	StageVisit,
	StageNegotiation,
	StageWon,
	StageLost,
}

func IsValidStage(s Stage) bool {
	for _, stage := range Stages {
		if stage == s {
			return true
		}
	}
	return false
}

package request_models

type MoveActivityRequest struct {
	ActivityID  string `json:"activity_id" binding:"required"`
	TargetDayID string `json:"target_day_id" binding:"required"`
	// Drop position in the target day as displayed before the move.
	TargetIndex *int `json:"target_index" binding:"required"`
}

type UpdateActivityRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Time        string `json:"time" binding:"max=32"`
	Duration    string `json:"duration" binding:"max=64"`
	Cost        string `json:"cost" binding:"max=64"`
	Location    string `json:"location" binding:"max=200"`
	Type        string `json:"type" binding:"required,oneof=attraction restaurant hotel transport activity"`
}

type UpdateTripDetailsRequest struct {
	Title       string `json:"title" binding:"required,max=120"`
	Destination string `json:"destination" binding:"max=120"`
	Travelers   int    `json:"travelers" binding:"required,min=1,max=50"`
}

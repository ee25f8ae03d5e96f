package handler

// errorResponse is the envelope for validation and internal errors.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries a human-readable outcome. State conflicts and
// unknown users are reported with it too.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type userPathParams struct {
	UserID string `param:"user_id" validate:"required,nocontrol"`
}

type clockOutResponse struct {
	Message         string  `json:"message"`
	TotalTimeWorked float64 `json:"total_time_worked"`
}

// timeLogResponse mirrors the stored entry. Absent timestamps render as null.
type timeLogResponse struct {
	UserID          string  `json:"user_id"`
	ClockInTime     *string `json:"clock_in_time"`
	ClockOutTime    *string `json:"clock_out_time"`
	TotalTimeWorked float64 `json:"total_time_worked"`
}

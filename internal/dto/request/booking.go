package request

type CreateBookingRequest struct {
	HallID      string `json:"hall_id" validate:"required,uuid4"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	Attendees   int    `json:"attendees" validate:"required,gt=0"`
	Purpose     string `json:"purpose" validate:"max=2000"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type DecideBookingRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accepted rejected"`
	Reason   string `json:"reason" validate:"max=500"`
}

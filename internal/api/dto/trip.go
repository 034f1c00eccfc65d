package dto

type TripResponse struct {
	TripID         int    `json:"trip_id"`
	Name           string `json:"name"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	ArriveBy       string `json:"arrive_by"`
	RecipientPhone string `json:"recipient_phone"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

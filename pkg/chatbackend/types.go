package chatbackend

import (
	"time"

	"travel-backoffice/pkg/taskstack"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// SendRequest is the body of POST /chat.
type SendRequest struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	History   []Message `json:"history,omitempty"`
}

// Reply is what the backend answered. Poll replies carry only Stack.
type Reply struct {
	Message string                `json:"message"`
	Stack   []taskstack.StackItem `json:"stack"`
	Options []TravelOption        `json:"options"`
}

// OptionType names the kind of travel option.
type OptionType string

const (
	OptionHotel     OptionType = "hotel"
	OptionFlight    OptionType = "flight"
	OptionCarRental OptionType = "car_rental"
)

// TravelOption is a structured suggestion. Exactly one payload matches Type.
type TravelOption struct {
	Type      OptionType       `json:"type"`
	Hotel     *HotelOption     `json:"hotel,omitempty"`
	Flight    *FlightOption    `json:"flight,omitempty"`
	CarRental *CarRentalOption `json:"car_rental,omitempty"`
}

// Valid reports whether the payload for Type is present.
func (o TravelOption) Valid() bool {
	switch o.Type {
	case OptionHotel:
		return o.Hotel != nil
	case OptionFlight:
		return o.Flight != nil
	case OptionCarRental:
		return o.CarRental != nil
	}
	return false
}

type HotelOption struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	PricePerNight string  `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Rating        float64 `json:"rating"`
}

type FlightOption struct {
	Carrier      string `json:"carrier"`
	FlightNumber string `json:"flight_number"`
	From         string `json:"from"`
	To           string `json:"to"`
	DepartAt     string `json:"depart_at"`
	ArriveAt     string `json:"arrive_at"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
}

type CarRentalOption struct {
	Company        string `json:"company"`
	Model          string `json:"model"`
	PickupLocation string `json:"pickup_location"`
	PickupAt       string `json:"pickup_at"`
	DropoffAt      string `json:"dropoff_at"`
	Price          string `json:"price"`
	Currency       string `json:"currency"`
}

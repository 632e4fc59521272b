package rabbitmq

import amqp "github.com/rabbitmq/amqp091-go"

// Ack is the settlement a handler chose for one delivery.
type Ack int

const (
	// AckDone acknowledges the delivery.
	AckDone Ack = iota
	// AckRequeue rejects the delivery and puts it back on the queue.
	AckRequeue
	// AckDrop rejects the delivery for good.
	AckDrop
)

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

var _ acknowledger = amqp.Delivery{}

func settle(d acknowledger, a Ack) {
	switch a {
	case AckDone:
		_ = d.Ack(false)
	case AckRequeue:
		_ = d.Nack(false, true)
	default:
		_ = d.Nack(false, false)
	}
}

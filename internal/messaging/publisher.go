package messaging

import "fmt"

// PlayerSubject returns the NATS subject carrying output for one player.
func PlayerSubject(playerId string) string {
	return fmt.Sprintf("player-%s", playerId)
}

// NatsPublisher publishes game output to a player's NATS subject.
type NatsPublisher struct {
	server *NatsServer
}

// NewNatsPublisher wraps a NatsServer for per-player message delivery.
func NewNatsPublisher(server *NatsServer) *NatsPublisher {
	return &NatsPublisher{server: server}
}

func (p *NatsPublisher) Publish(subject string, data []byte) error {
	return p.server.Publish(subject, data)
}

// SendToPlayer delivers one message to the player's subject.
func (p *NatsPublisher) SendToPlayer(playerId string, msg string) error {
	return p.server.Publish(PlayerSubject(playerId), []byte(msg))
}

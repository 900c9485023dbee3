// Package notify pushes fresh timetable snapshots to companion display
// devices (wall calendars, e-ink frames) over MQTT. The broker is optional:
// when no broker is configured every publish is a no-op.
package notify

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

var client mqtt.Client

var connectHandler mqtt.OnConnectHandler = func(c mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(c mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// Init connects to the broker. Call once from main when a broker URL is
// configured; leaving it uncalled disables publishing entirely.
func Init(brokerURL, clientID string) error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	opts.SetAutoReconnect(true)

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	client = c
	return nil
}

// PublishTimetable sends the rendered week snapshot to the user's display
// topic. Publish failures are logged and swallowed; a broker outage must
// never fail a save.
func PublishTimetable(userID int, payload []byte) {
	if client == nil {
		return
	}
	topic := fmt.Sprintf("bkalendar/%d/timetable", userID)
	token := client.Publish(topic, 1, true, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish timetable snapshot")
	}
}

// Close disconnects from the broker.
func Close() {
	if client != nil {
		client.Disconnect(250)
		client = nil
	}
}

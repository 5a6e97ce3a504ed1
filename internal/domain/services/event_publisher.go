package services

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/NaomiMeseret/Employee-shift-management/internal/infrastructure/config"
	"github.com/NaomiMeseret/Employee-shift-management/pkg/logger"
)

// TopicAttendance is the topic attendance events are published to
const TopicAttendance = "workforce/attendance"

// AttendanceEvent is the payload published after a successful clock action
type AttendanceEvent struct {
	EmployeeID string `json:"employeeId"`
	ShiftID    string `json:"shiftId"`
	Action     string `json:"action"`
	Time       string `json:"time"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// InterfaceEventPublisher defines the attendance event publisher interface
type InterfaceEventPublisher interface {
	Connect() error
	PublishAttendanceEvent(event AttendanceEvent) error
	Disconnect()
}

// EventPublisher pushes attendance events to an MQTT broker so dashboards
// and mobile clients can follow clock activity live. Publishing is best
// effort: the attendance flow never fails because the broker is down.
type EventPublisher struct {
	Config *config.Config
	Client mqtt.Client

	connected      bool
	connectedMutex sync.RWMutex
}

// NewEventPublisher creates an MQTT event publisher. Returns nil when no
// broker is configured.
func NewEventPublisher(cfg *config.Config) InterfaceEventPublisher {
	if cfg.MQTTBrokerURL == "" {
		return nil
	}

	p := &EventPublisher{Config: cfg}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// Unique client id so multiple server instances do not evict each other
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.NewString()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetCleanSession(true)

	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		logger.Warning("[MQTT] connection lost: %v", err)
		p.connectedMutex.Lock()
		p.connected = false
		p.connectedMutex.Unlock()
	})
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		logger.Info("[MQTT] connected to %s", cfg.MQTTBrokerURL)
		p.connectedMutex.Lock()
		p.connected = true
		p.connectedMutex.Unlock()
	})

	p.Client = mqtt.NewClient(opts)
	return p
}

// Connect establishes the broker connection
func (p *EventPublisher) Connect() error {
	token := p.Client.Connect()
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		if token.Error() != nil {
			return token.Error()
		}
		return fmt.Errorf("mqtt connect timeout")
	}
	return nil
}

// PublishAttendanceEvent publishes one clock event as JSON
func (p *EventPublisher) PublishAttendanceEvent(event AttendanceEvent) error {
	p.connectedMutex.RLock()
	connected := p.connected && p.Client.IsConnected()
	p.connectedMutex.RUnlock()

	if !connected {
		return fmt.Errorf("mqtt client not connected")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	token := p.Client.Publish(TopicAttendance, byte(p.Config.MQTTQoS), false, payload)
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("mqtt publish timeout")
	}
	return token.Error()
}

// Disconnect closes the broker connection
func (p *EventPublisher) Disconnect() {
	if p.Client != nil && p.Client.IsConnected() {
		p.Client.Disconnect(250)
	}
}

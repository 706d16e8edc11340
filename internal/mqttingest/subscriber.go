// Package mqttingest feeds device readings published over MQTT into the same
// ingress operation the HTTP endpoint uses.
package mqttingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/donaldgifford/plant-telemetry/internal/config"
	"github.com/donaldgifford/plant-telemetry/internal/engine"
	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	"github.com/donaldgifford/plant-telemetry/internal/normalize"
)

// disconnectQuiesce is how long Disconnect waits for in-flight work, in ms.
const disconnectQuiesce = 250

// ErrAlreadyStarted is returned by Start on a running subscriber.
var ErrAlreadyStarted = errors.New("mqtt subscriber already started")

// Receiver accepts one submitted payload.
type Receiver interface {
	Receive(ctx context.Context, body []byte) engine.IngestResult
}

// Option configures a Subscriber.
type Option func(*Subscriber)

// WithLogger sets the subscriber logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Subscriber) { s.log = l }
}

// WithClientFactory replaces the paho client constructor.
func WithClientFactory(f func(*mqtt.ClientOptions) mqtt.Client) Option {
	return func(s *Subscriber) { s.newClient = f }
}

// Subscriber subscribes to the readings topic and hands every message to a
// Receiver.
type Subscriber struct {
	cfg       config.MQTTConfig
	receiver  Receiver
	log       *slog.Logger
	newClient func(*mqtt.ClientOptions) mqtt.Client

	mu     sync.Mutex
	client mqtt.Client

	ctxMu sync.RWMutex
	ctx   context.Context
}

// New creates a Subscriber. Nothing connects until Start.
func New(cfg config.MQTTConfig, r Receiver, opts ...Option) *Subscriber {
	s := &Subscriber{
		cfg:       cfg,
		receiver:  r,
		log:       slog.Default(),
		newClient: mqtt.NewClient,
		ctx:       context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start connects to the broker. The subscription is (re)made on every
// successful connection. Message handling uses ctx without its cancellation.
func (s *Subscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return ErrAlreadyStarted
	}
	s.ctxMu.Lock()
	s.ctx = context.WithoutCancel(ctx)
	s.ctxMu.Unlock()

	client := s.newClient(s.clientOptions())
	token := client.Connect()
	if s.cfg.ConnectTimeout > 0 {
		if !token.WaitTimeout(s.cfg.ConnectTimeout) {
			client.Disconnect(0)
			return fmt.Errorf("connecting to mqtt broker %s: timed out after %s", s.cfg.Broker, s.cfg.ConnectTimeout)
		}
	} else {
		token.Wait()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("connecting to mqtt broker %s: %w", s.cfg.Broker, err)
	}

	s.client = client
	return nil
}

// Stop unsubscribes and disconnects. It is safe to call on a stopped
// subscriber.
func (s *Subscriber) Stop() {
	s.mu.Lock()
	client := s.client
	s.client = nil
	s.mu.Unlock()

	if client == nil {
		return
	}
	if client.IsConnected() {
		if token := client.Unsubscribe(s.cfg.Topic); token.Wait() && token.Error() != nil {
			s.log.Warn("mqtt unsubscribe failed", "topic", s.cfg.Topic, "error", token.Error())
		}
	}
	client.Disconnect(disconnectQuiesce)
	s.log.Info("disconnected from mqtt broker", "broker", s.cfg.Broker)
}

func (s *Subscriber) clientOptions() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.cfg.Broker)
	opts.SetClientID(clientID(s.cfg.ClientID))

	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
	}
	if s.cfg.Password != "" {
		opts.SetPassword(s.cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	if s.cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(s.cfg.ConnectTimeout)
	}

	opts.SetOnConnectHandler(s.onConnect)
	opts.SetConnectionLostHandler(s.onConnectionLost)
	return opts
}

// clientID suffixes the configured id so replicas do not evict each other.
func clientID(base string) string {
	suffix := uuid.NewString()[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

func (s *Subscriber) onConnect(client mqtt.Client) {
	token := client.Subscribe(s.cfg.Topic, s.cfg.QoS, s.onMessage)
	token.Wait()
	if err := token.Error(); err != nil {
		s.log.Error("mqtt subscribe failed", "topic", s.cfg.Topic, "error", err)
		return
	}
	s.log.Info("subscribed to mqtt topic", "broker", s.cfg.Broker, "topic", s.cfg.Topic, "qos", s.cfg.QoS)
}

func (s *Subscriber) onConnectionLost(_ mqtt.Client, err error) {
	s.log.Warn("mqtt connection lost", "broker", s.cfg.Broker, "error", err)
}

func (s *Subscriber) onMessage(_ mqtt.Client, msg mqtt.Message) {
	s.ctxMu.RLock()
	ctx := s.ctx
	s.ctxMu.RUnlock()

	s.Handle(ctx, msg.Topic(), msg.Payload())
}

// Handle submits one message payload. When the topic names a sensor and the
// payload carries no sensor code, the topic's code is used.
func (s *Subscriber) Handle(ctx context.Context, topic string, payload []byte) engine.IngestResult {
	body := withSensorCode(payload, SensorCodeFromTopic(topic))
	res := s.receiver.Receive(ctx, body)

	metrics.MQTTMessagesTotal.WithLabelValues(resultLabel(res.Kind)).Inc()
	switch res.Kind {
	case engine.ResultAccepted:
		s.log.Debug("mqtt reading accepted", "topic", topic, "sensor", res.SensorCode, "reading", res.ReadingID)
	case engine.ResultInvalid:
		s.log.Warn("mqtt reading rejected", "topic", topic, "error", res.Error)
	default:
		s.log.Error("mqtt reading failed", "topic", topic, "error", res.Error)
	}
	return res
}

// SensorCodeFromTopic returns the topic segment following "sensors", or ""
// when there is none or it is a wildcard.
func SensorCodeFromTopic(topic string) string {
	segments := strings.Split(topic, "/")
	for i, seg := range segments {
		if seg != "sensors" || i+1 >= len(segments) {
			continue
		}
		code := segments[i+1]
		if code == "+" || code == "#" {
			return ""
		}
		return code
	}
	return ""
}

// withSensorCode adds code to a JSON object payload that lacks a sensor code.
// Anything that is not a single JSON object is returned unchanged so the
// receiver reports it.
func withSensorCode(payload []byte, code string) []byte {
	if code == "" {
		return payload
	}

	obj := map[string]any{}
	if trimmed := bytes.TrimSpace(payload); len(trimmed) > 0 {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil || obj == nil {
			return payload
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return payload
		}
	}

	if v, ok := obj[normalize.FieldSensorCode]; ok && v != nil && v != "" {
		return payload
	}
	obj[normalize.FieldSensorCode] = code

	b, err := json.Marshal(obj)
	if err != nil {
		return payload
	}
	return b
}

func resultLabel(k engine.ResultKind) string {
	switch k {
	case engine.ResultAccepted:
		return "accepted"
	case engine.ResultInvalid:
		return "rejected"
	default:
		return "failed"
	}
}

package mqttingest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/plant-telemetry/internal/config"
	"github.com/donaldgifford/plant-telemetry/internal/engine"
	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Enabled:        true,
		Broker:         "tcp://broker.local:1883",
		ClientID:       "plant-telemetry",
		Topic:          "plant/sensors/+/readings",
		QoS:            1,
		Username:       "plant",
		Password:       "secret",
		ConnectTimeout: time.Second,
	}
}

// fakeReceiver records payloads and answers with a fixed result.
type fakeReceiver struct {
	mu     sync.Mutex
	bodies [][]byte
	result engine.IngestResult
}

func (f *fakeReceiver) Receive(_ context.Context, body []byte) engine.IngestResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bodies = append(f.bodies, body)
	return f.result
}

func (f *fakeReceiver) last(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.bodies)
	var m map[string]any
	require.NoError(t, json.Unmarshal(f.bodies[len(f.bodies)-1], &m))
	return m
}

type doneToken struct{ err error }

func (t doneToken) Wait() bool                     { return true }
func (t doneToken) WaitTimeout(time.Duration) bool { return true }
func (t doneToken) Error() error                   { return t.err }
func (t doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type pendingToken struct{ doneToken }

func (pendingToken) WaitTimeout(time.Duration) bool { return false }

// fakeClient implements the parts of mqtt.Client the subscriber uses.
type fakeClient struct {
	mqtt.Client

	connectToken mqtt.Token
	subscribeErr error

	connected    bool
	subscribed   map[string]byte
	handler      mqtt.MessageHandler
	unsubscribed []string
	disconnects  []uint
}

func (c *fakeClient) Connect() mqtt.Token {
	if c.connectToken != nil {
		return c.connectToken
	}
	c.connected = true
	return doneToken{}
}

func (c *fakeClient) IsConnected() bool { return c.connected }

func (c *fakeClient) Subscribe(topic string, qos byte, cb mqtt.MessageHandler) mqtt.Token {
	if c.subscribeErr != nil {
		return doneToken{err: c.subscribeErr}
	}
	if c.subscribed == nil {
		c.subscribed = map[string]byte{}
	}
	c.subscribed[topic] = qos
	c.handler = cb
	return doneToken{}
}

func (c *fakeClient) Unsubscribe(topics ...string) mqtt.Token {
	c.unsubscribed = append(c.unsubscribed, topics...)
	return doneToken{}
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.connected = false
	c.disconnects = append(c.disconnects, quiesce)
}

type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

func newTestSubscriber(r Receiver, c *fakeClient) *Subscriber {
	return New(testConfig(), r,
		WithLogger(quietLogger()),
		WithClientFactory(func(*mqtt.ClientOptions) mqtt.Client { return c }),
	)
}

func TestSensorCodeFromTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		topic string
		want  string
	}{
		{topic: "plant/sensors/S-01/readings", want: "S-01"},
		{topic: "sensors/TK1-LVL", want: "TK1-LVL"},
		{topic: "plant/sensors/+/readings", want: ""},
		{topic: "plant/sensors/#", want: ""},
		{topic: "plant/sensors", want: ""},
		{topic: "plant/readings", want: ""},
		{topic: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SensorCodeFromTopic(tt.topic))
		})
	}
}

func TestWithSensorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		code    string
		want    string
	}{
		{name: "adds missing code", payload: `{"valor":12.5}`, code: "S-01", want: `{"sensor_codigo":"S-01","valor":12.5}`},
		{name: "replaces null code", payload: `{"sensor_codigo":null,"valor":1}`, code: "S-01", want: `{"sensor_codigo":"S-01","valor":1}`},
		{name: "keeps explicit code", payload: `{"sensor_codigo":"S-02","valor":1}`, code: "S-01", want: `{"sensor_codigo":"S-02","valor":1}`},
		{name: "empty payload becomes object", payload: ``, code: "S-01", want: `{"sensor_codigo":"S-01"}`},
		{name: "no topic code", payload: `{"valor":1}`, code: "", want: `{"valor":1}`},
		{name: "number text preserved", payload: `{"valor":12.50}`, code: "S-01", want: `{"sensor_codigo":"S-01","valor":12.50}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.JSONEq(t, tt.want, string(withSensorCode([]byte(tt.payload), tt.code)))
		})
	}
}

func TestWithSensorCode_NonObjectUnchanged(t *testing.T) {
	t.Parallel()

	for _, payload := range []string{`not json`, `[1,2]`, `null`, `{"valor":1} {"valor":2}`} {
		assert.Equal(t, payload, string(withSensorCode([]byte(payload), "S-01")), payload)
	}
}

func TestStart_ConnectsWithOptions(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	var opts *mqtt.ClientOptions
	s := New(testConfig(), &fakeReceiver{},
		WithLogger(quietLogger()),
		WithClientFactory(func(o *mqtt.ClientOptions) mqtt.Client {
			opts = o
			return client
		}),
	)

	require.NoError(t, s.Start(context.Background()))
	require.NotNil(t, opts)

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker.local:1883", opts.Servers[0].Host)
	assert.Regexp(t, `^plant-telemetry-[0-9a-f]{8}$`, opts.ClientID)
	assert.Equal(t, "plant", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.True(t, opts.AutoReconnect)
	assert.True(t, opts.CleanSession)
	assert.Equal(t, time.Second, opts.ConnectTimeout)

	assert.ErrorIs(t, s.Start(context.Background()), ErrAlreadyStarted)
}

func TestStart_ConnectErrors(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("connection refused")

	tests := []struct {
		name    string
		token   mqtt.Token
		wantErr string
	}{
		{name: "broker refuses", token: doneToken{err: errRefused}, wantErr: "connection refused"},
		{name: "connect times out", token: pendingToken{}, wantErr: "timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &fakeClient{connectToken: tt.token}
			s := newTestSubscriber(&fakeReceiver{}, client)

			err := s.Start(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "broker.local")
		})
	}
}

func TestOnConnect_Subscribes(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	s := newTestSubscriber(&fakeReceiver{}, client)

	s.onConnect(client)
	assert.Equal(t, map[string]byte{"plant/sensors/+/readings": 1}, client.subscribed)
	assert.NotNil(t, client.handler)
}

func TestOnConnect_SubscribeFailureIsLogged(t *testing.T) {
	t.Parallel()

	client := &fakeClient{subscribeErr: errors.New("not authorized")}
	s := newTestSubscriber(&fakeReceiver{}, client)

	assert.NotPanics(t, func() { s.onConnect(client) })
	assert.Nil(t, client.handler)
}

func TestStop(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	s := newTestSubscriber(&fakeReceiver{}, client)

	s.Stop()
	assert.Empty(t, client.disconnects, "stop before start is a no-op")

	require.NoError(t, s.Start(context.Background()))
	s.Stop()
	s.Stop()

	assert.Equal(t, []string{"plant/sensors/+/readings"}, client.unsubscribed)
	assert.Equal(t, []uint{disconnectQuiesce}, client.disconnects)
}

func TestOnMessage_UsesTopicCode(t *testing.T) {
	t.Parallel()

	recv := &fakeReceiver{result: engine.IngestResult{OK: true, Kind: engine.ResultAccepted}}
	client := &fakeClient{}
	s := newTestSubscriber(recv, client)

	s.onConnect(client)
	client.handler(client, fakeMessage{topic: "plant/sensors/S-07/readings", payload: []byte(`{"valor":3}`)})

	got := recv.last(t)
	assert.Equal(t, "S-07", got["sensor_codigo"])
}

func TestHandle_CountsResults(t *testing.T) {
	tests := []struct {
		kind  engine.ResultKind
		label string
	}{
		{kind: engine.ResultAccepted, label: "accepted"},
		{kind: engine.ResultInvalid, label: "rejected"},
		{kind: engine.ResultFailed, label: "failed"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			recv := &fakeReceiver{result: engine.IngestResult{Kind: tt.kind}}
			s := newTestSubscriber(recv, &fakeClient{})

			counter := metrics.MQTTMessagesTotal.WithLabelValues(tt.label)
			before := testutil.ToFloat64(counter)

			res := s.Handle(context.Background(), "plant/sensors/S-01/readings", []byte(`{}`))
			assert.Equal(t, tt.kind, res.Kind)
			assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0.001)
		})
	}
}

func TestHandle_EndToEnd(t *testing.T) {
	ctx := context.Background()

	st := store.NewMemoryStore()
	sn := domain.NewSensor(domain.Device{Code: "S-01", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	require.NoError(t, st.CreateSensor(ctx, sn))
	act := domain.NewActuator(domain.Device{Code: "A-01", Name: "Bomba TK1"}, domain.ActuatorPump, "GPIO23")
	require.NoError(t, st.CreateActuator(ctx, act))
	rule := domain.NewRule(sn.ID, domain.CompareGT, 50, "nivel alto")
	rule.ActuatorID = &act.ID
	require.NoError(t, st.CreateRule(ctx, rule))

	eng := engine.NewEngine(st, engine.WithLogger(quietLogger()))
	s := New(testConfig(), eng, WithLogger(quietLogger()))

	res := s.Handle(ctx, "plant/sensors/S-01/readings", []byte(`{"valor": 72.5, "unidad": "cm"}`))
	require.True(t, res.OK, res.Error)
	assert.Equal(t, "S-01", res.SensorCode)

	reading, err := st.GetReading(ctx, res.ReadingID)
	require.NoError(t, err)
	assert.InDelta(t, 72.5, reading.Value, 0.0001)
	assert.Equal(t, domain.SourceDevice, reading.Source)

	pump, err := st.GetActuator(ctx, act.ID)
	require.NoError(t, err)
	assert.True(t, pump.IsOn)

	res = s.Handle(ctx, "plant/sensors/S-99/readings", []byte(`{"valor": 1, "unidad": "cm"}`))
	assert.False(t, res.OK)
	assert.Equal(t, engine.ResultInvalid, res.Kind)
	assert.Equal(t, "sensor not found: S-99", res.Error)
}

func TestHandle_MissingUnitRejected(t *testing.T) {
	ctx := context.Background()

	st := store.NewMemoryStore()
	sn := domain.NewSensor(domain.Device{Code: "S-01", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	require.NoError(t, st.CreateSensor(ctx, sn))

	eng := engine.NewEngine(st, engine.WithLogger(quietLogger()))
	s := New(testConfig(), eng, WithLogger(quietLogger()))

	res := s.Handle(ctx, "plant/sensors/S-01/readings", []byte(`{"valor": 72.5}`))
	assert.False(t, res.OK)
	assert.Equal(t, engine.ResultInvalid, res.Kind)
	assert.Equal(t, "missing field 'unidad'", res.Error)

	readings, err := st.ListReadings(ctx, &store.ReadingQuery{SensorID: &sn.ID})
	require.NoError(t, err)
	assert.Empty(t, readings)
}

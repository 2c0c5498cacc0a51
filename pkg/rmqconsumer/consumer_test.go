package rmqconsumer

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-manager-api/config"
	"employee-manager-api/internal/infrastructure/mq"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()
	return buf.String()
}

func Test_delivery_Table(t *testing.T) {
	type tc struct {
		name       string
		routingKey string
		body       string
		wantOut    string
	}
	cases := []tc{
		{"registered", mq.ActionRegistered, `{"id":1}`, "Action=EmployeeRegistered EventBody={\"id\":1}\n"},
		{"logged in", mq.ActionLoggedIn, `{"id":2}`, "Action=EmployeeLoggedIn EventBody={\"id\":2}\n"},
		{"updated", mq.ActionUpdated, `{"id":3}`, "Action=EmployeeUpdated EventBody={\"id\":3}\n"},
		{"deletion scheduled", mq.ActionDeletionScheduled, `{"id":4}`, "Action=EmployeeDeletionScheduled EventBody={\"id\":4}\n"},
		{"schedule removed", mq.ActionScheduleRemoved, `{"id":5}`, "Action=EmployeeScheduleRemoved EventBody={\"id\":5}\n"},
		{"deleted", mq.ActionDeleted, `{"id":6}`, "Action=EmployeeDeleted EventBody={\"id\":6}\n"},
		{"unknown -> empty", "employee.archived", `{"id":7}`, "Action= EventBody={\"id\":7}\n"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := &Consumer{}
			out := captureStdout(t, func() {
				msg := amqp091.Delivery{RoutingKey: tt.routingKey, Body: []byte(tt.body)}
				err := c.delivery(msg)
				require.NoError(t, err)
			})
			require.Equal(t, tt.wantOut, out)
		})
	}
}

func TestConnect_InvalidDSN(t *testing.T) {
	l := zap.NewNop()
	c := New(config.MQ{}, l, nil)

	err := c.Connect("amqp://bad:://dsn")
	require.Error(t, err)
	require.Nil(t, c.chConsume)
	require.Nil(t, c.conn)
}

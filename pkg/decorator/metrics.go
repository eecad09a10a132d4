package decorator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/architeacher/idevices/pkg/metrics"
)

type (
	commandMetricsDecorator[C Command, R any] struct {
		base   CommandHandler[C, R]
		client metrics.Client
	}

	queryMetricsDecorator[Q Query, R Result] struct {
		base   QueryHandler[Q, R]
		client metrics.Client
	}
)

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(cmd))

	defer func() {
		recordOutcome(ctx, d.client, "commands", actionName, time.Since(start), err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, query Q) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(query))

	defer func() {
		recordOutcome(ctx, d.client, "queries", actionName, time.Since(start), err)
	}()

	return d.base.Execute(ctx, query)
}

func recordOutcome(ctx context.Context, client metrics.Client, group, action string, took time.Duration, err error) {
	if client == nil {
		return
	}

	client.Inc(ctx, fmt.Sprintf("%s.%s.duration_ms", group, action), took.Milliseconds())

	if err == nil {
		client.Inc(ctx, fmt.Sprintf("%s.%s.success", group, action), 1)
	} else {
		client.Inc(ctx, fmt.Sprintf("%s.%s.failure", group, action), 1)
	}
}

package printer

import (
	"context"
	"testing"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/stretchr/testify/assert"
)

func TestNetworkTracker_IdleAfterRequestsFinish(t *testing.T) {
	tr := newNetworkTracker()
	tr.handle(&network.EventRequestWillBeSent{RequestID: "1"})
	tr.handle(&network.EventRequestWillBeSent{RequestID: "2"})

	assert.Zero(t, tr.idleSince(time.Now().Add(time.Hour)))

	tr.handle(&network.EventLoadingFinished{RequestID: "1"})
	tr.handle(&network.EventLoadingFailed{RequestID: "2"})

	assert.GreaterOrEqual(t, tr.idleSince(time.Now().Add(time.Second)), 900*time.Millisecond)
}

func TestNetworkTracker_WaitIdleTimesOut(t *testing.T) {
	tr := newNetworkTracker()
	tr.handle(&network.EventRequestWillBeSent{RequestID: "stuck"})

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	err := tr.waitIdle(ctx, 10*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNetworkTracker_WaitIdleReturns(t *testing.T) {
	tr := newNetworkTracker()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, tr.waitIdle(ctx, 20*time.Millisecond))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/internal/mock"
	"github.com/vkarasev/go-casper-client/models"
)

func testDeployHash(t *testing.T) casper.Digest {
	t.Helper()
	hash, err := casper.ParseDigest("01da3c604f71e0e7df83ff1ab4ef15bb04de64ca02e3d2b78de6950e8b5ee187")
	require.NoError(t, err)
	return hash
}

func executedResult() models.GetDeployResult {
	return models.GetDeployResult{
		APIVersion: "1.5.6",
		ExecutionResults: []models.ExecutionResult{
			{Result: models.ExecutionStatus{Success: &models.ExecutionSuccess{Cost: "100000000"}}},
		},
	}
}

func newTestPoller(t *testing.T, interval, timeout time.Duration) (DeployPoller, *mock.MockNodeAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	nodeAdapter := mock.NewMockNodeAdapter(ctrl)
	poller := NewDeployPoller(nodeAdapter, config.ClientWorkers{
		PollInterval: interval,
		PollTimeout:  timeout,
	}, logger.Nop())
	return poller, nodeAdapter
}

// ── Wait ─────────────────────────────────────────────────────────────────────

func TestWait_AlreadyExecuted(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, time.Minute, time.Minute)
	hash := testDeployHash(t)

	// результат есть сразу, ждать тикер не нужно
	nodeAdapter.EXPECT().
		GetDeploy(gomock.Any(), hash, false).
		Return(executedResult(), nil)

	start := time.Now()
	result, err := poller.Wait(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, result.Executed())
	assert.Less(t, time.Since(start), time.Second, "first query must not wait for a tick")
}

func TestWait_RetriesUntilExecuted(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, 10*time.Millisecond, time.Minute)
	hash := testDeployHash(t)

	pending := models.GetDeployResult{APIVersion: "1.5.6"}
	gomock.InOrder(
		nodeAdapter.EXPECT().GetDeploy(gomock.Any(), hash, false).Return(pending, nil),
		nodeAdapter.EXPECT().GetDeploy(gomock.Any(), hash, false).Return(pending, nil),
		nodeAdapter.EXPECT().GetDeploy(gomock.Any(), hash, false).Return(executedResult(), nil),
	)

	result, err := poller.Wait(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, result.Executed())
}

func TestWait_NodeErrorsAreRetried(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, 10*time.Millisecond, time.Minute)
	hash := testDeployHash(t)

	// временная ошибка узла не прерывает ожидание
	gomock.InOrder(
		nodeAdapter.EXPECT().GetDeploy(gomock.Any(), hash, false).
			Return(models.GetDeployResult{}, errors.New("connection refused")),
		nodeAdapter.EXPECT().GetDeploy(gomock.Any(), hash, false).
			Return(executedResult(), nil),
	)

	result, err := poller.Wait(context.Background(), hash)
	require.NoError(t, err)
	assert.True(t, result.Executed())
}

func TestWait_Timeout(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, 10*time.Millisecond, 50*time.Millisecond)
	hash := testDeployHash(t)

	nodeAdapter.EXPECT().
		GetDeploy(gomock.Any(), hash, false).
		Return(models.GetDeployResult{}, nil).
		AnyTimes()

	_, err := poller.Wait(context.Background(), hash)
	assert.ErrorIs(t, err, ErrWaitTimeout)
}

func TestWait_TimeoutKeepsLastError(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, 10*time.Millisecond, 50*time.Millisecond)
	hash := testDeployHash(t)

	nodeAdapter.EXPECT().
		GetDeploy(gomock.Any(), hash, false).
		Return(models.GetDeployResult{}, errors.New("deploy not known")).
		AnyTimes()

	_, err := poller.Wait(context.Background(), hash)
	require.ErrorIs(t, err, ErrWaitTimeout)
	assert.Contains(t, err.Error(), "deploy not known")
}

func TestWait_ParentCancellation(t *testing.T) {
	poller, nodeAdapter := newTestPoller(t, time.Minute, time.Minute)
	hash := testDeployHash(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodeAdapter.EXPECT().
		GetDeploy(gomock.Any(), hash, false).
		Return(models.GetDeployResult{}, nil).
		AnyTimes()

	_, err := poller.Wait(ctx, hash)
	assert.ErrorIs(t, err, context.Canceled)
}

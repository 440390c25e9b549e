/*
 * Copyright (c) 2020. Temple3x (temple3x@gmail.com)
 * Copyright 2016 PingCAP, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *       http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package metrics provides Kupyna hashing metrics,
// and functions to push them to Prometheus Pushgateway.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/templexxx/tsc"
	"go.uber.org/zap"

	"github.com/zaibyte/kupyna/config"
	"github.com/zaibyte/kupyna/config/settings"
	"github.com/zaibyte/kupyna/xlog"
)

// Ops.
const (
	OpHash = "hash"
	OpMAC  = "mac"
)

var (
	// HashedBytes is the bytes hashed by op & bits.
	HashedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kupyna",
			Name:      "hashed_bytes_total",
			Help:      "Total bytes hashed.",
		}, []string{"op", "bits"})

	// HashOps is the count of finished codes (or MACs) by op & bits.
	HashOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kupyna",
			Name:      "hash_ops_total",
			Help:      "Total codes made.",
		}, []string{"op", "bits"})

	// HashDuration is the time cost of making a code.
	HashDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kupyna",
			Name:      "hash_duration_seconds",
			Help:      "Time cost of making a code.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100us ~ 26s
		}, []string{"op", "bits"})
)

// Registry holds all kupyna metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(HashedBytes, HashOps, HashDuration)
}

// Now returns the timestamp for Observe.
func Now() int64 {
	return tsc.UnixNano()
}

// Observe records an op on n bytes which started at start (got by Now).
func Observe(op string, bits int, n int64, start int64) {
	b := strconv.Itoa(bits)
	HashedBytes.WithLabelValues(op, b).Add(float64(n))
	HashOps.WithLabelValues(op, b).Inc()
	HashDuration.WithLabelValues(op, b).Observe(float64(tsc.UnixNano()-start) / float64(time.Second))
}

// Config is the Pushgateway push configs, push is disabled without PushAddress.
type Config struct {
	PushJob      string          `toml:"push_job"`
	PushAddress  string          `toml:"push_address"`
	PushInterval config.Duration `toml:"push_interval"`
}

// Push pushes metrics in background until stop is called,
// stop pushes the last time before returning.
// It does nothing if there is no PushAddress.
func Push(cfg *Config, instance string) (stop func()) {

	if len(cfg.PushAddress) == 0 {
		xlog.Info("disable Prometheus push client")
		return func() {}
	}

	if instance == "" {
		panic("instance must not be empty")
	}

	config.Adjust(&cfg.PushJob, settings.AppName)
	config.AdjustDuration(&cfg.PushInterval, settings.DefaultPushInterval)

	xlog.Info("start Prometheus push client", zap.String("address", cfg.PushAddress))

	pusher := push.New(cfg.PushAddress, cfg.PushJob).
		Gatherer(Registry).
		Grouping("instance", instance)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		prometheusPushClient(pusher, cfg.PushInterval.Duration, done)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}

// prometheusPushClient pushes metrics to Prometheus Pushgateway.
func prometheusPushClient(pusher *push.Pusher, interval time.Duration, done <-chan struct{}) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pushOnce(pusher)
		case <-done:
			pushOnce(pusher)
			return
		}
	}
}

func pushOnce(pusher *push.Pusher) {
	if err := pusher.Push(); err != nil {
		xlog.Error("could not push metrics to Prometheus Pushgateway", zap.Error(err))
	}
}

package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/tidwall/gjson"
)

// Endpoints locates the bridge and the release registry.
type Endpoints struct {
	BridgeHost  string
	BridgePath  string
	DirectHost  string
	ReleasePath string // e.g. /repos/<owner>/<repo>/releases/latest
}

// Retriever fetches the raw release payload, bridge first, registry second.
type Retriever struct {
	Transport Transport
	Endpoints Endpoints
	Log       Logger
}

// ByBridge asks the bridge to forward the release request with its own
// credentials. Any panic inside the attempt is converted into a
// RuntimeFault error.
func (r *Retriever) ByBridge(ctx context.Context) (string, error) {
	var result string
	err := guard(SourceBridge, func() error {
		payload, err := json.Marshal(map[string]string{"forward_request": r.Endpoints.ReleasePath})
		if err != nil {
			return &FetchError{Reason: ReasonMalformedPayload, Via: SourceBridge, Err: err}
		}
		resp, err := r.Transport.Request(ctx, Request{
			Method: http.MethodPost,
			Host:   r.Endpoints.BridgeHost,
			Path:   r.Endpoints.BridgePath,
			Headers: map[string]string{
				"Accept":       "application/json",
				"Content-Type": "application/json",
			},
			Body:    string(payload),
			HasBody: true,
		})
		if err != nil {
			return &FetchError{Reason: ReasonTransportFailure, Via: SourceBridge, Err: err}
		}
		if resp.Status != http.StatusOK {
			return &FetchError{Reason: ReasonUnexpectedStatus, Via: SourceBridge, Status: resp.Status, Body: resp.Body}
		}

		var probe json.RawMessage
		if err := json.Unmarshal([]byte(resp.Body), &probe); err != nil {
			return &FetchError{Reason: ReasonMalformedPayload, Via: SourceBridge, Body: resp.Body, Err: err}
		}
		if msg := gjson.Get(resp.Body, "bridge_error_message"); msg.Type == gjson.String {
			return &FetchError{Reason: ReasonBridgeRejected, Via: SourceBridge, Err: fmt.Errorf("bridge_error_message: %s", msg.Str)}
		}

		result = resp.Body
		return nil
	})
	if err != nil {
		r.report(err)
		return "", err
	}
	r.logger().TraceInfo("[Updater] Get data by bridge successed.")
	return result, nil
}

// Directly queries the release registry without authentication. It is
// subject to the registry's anonymous rate limit.
func (r *Retriever) Directly(ctx context.Context) (string, error) {
	resp, err := r.Transport.Request(ctx, Request{
		Method: http.MethodGet,
		Host:   r.Endpoints.DirectHost,
		Path:   r.Endpoints.ReleasePath,
		Headers: map[string]string{
			"Accept": "application/vnd.github.v3+json",
		},
	})
	if err != nil {
		ferr := &FetchError{Reason: ReasonTransportFailure, Via: SourceDirect, Err: err}
		r.report(ferr)
		return "", ferr
	}
	if resp.Status != http.StatusOK {
		ferr := &FetchError{Reason: ReasonUnexpectedStatus, Via: SourceDirect, Status: resp.Status, Body: resp.Body}
		r.report(ferr)
		return "", ferr
	}
	r.logger().TraceInfo("[Updater] Get data directly successed.")
	return resp.Body, nil
}

func (r *Retriever) report(err error) {
	fe, ok := err.(*FetchError)
	if !ok {
		r.logger().TraceWarn("[Updater] " + err.Error())
		return
	}
	tag := " (ByBridge)"
	if fe.Via == SourceDirect {
		tag = " (Directly)"
	}
	switch fe.Reason {
	case ReasonTransportFailure:
		r.logger().TraceWarn("[Updater] HTTP request failed: " + fe.Err.Error() + tag)
	case ReasonUnexpectedStatus:
		r.logger().TraceWarn("[Updater] Response status is not 200. Status: " + strconv.Itoa(fe.Status) + " Response: " + excerpt(fe.Body) + tag)
	case ReasonMalformedPayload:
		r.logger().TraceWarn("[Updater] Parse response failed. JsonError: " + fe.Err.Error() + " Response: " + excerpt(fe.Body) + tag)
	case ReasonBridgeRejected:
		r.logger().TraceWarn("[Updater] " + fe.Err.Error() + tag)
	case ReasonRuntimeFault:
		r.logger().TraceWarn("[Updater] A fault was caught: " + fe.Err.Error() + tag)
	default:
		r.logger().TraceWarn("[Updater] " + fe.Error())
	}
}

func (r *Retriever) logger() Logger {
	if r.Log == nil {
		return nopLogger{}
	}
	return r.Log
}

// guard runs fn behind a fault barrier: a panic becomes a RuntimeFault.
func guard(via Source, fn func() error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &FetchError{
				Reason: ReasonRuntimeFault,
				Via:    via,
				Err:    fmt.Errorf("panic: %v\n%s", rec, debug.Stack()),
			}
		}
	}()
	return fn()
}

// Package gateway is the HTTP client for the remote employee and attendance
// collections. It owns no state; every call is one round trip.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/store"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "http://localhost:3000/api"
	DefaultTimeout = 10 * time.Second

	employeesPath  = "/employees/"
	employeePath   = "/employees/{employeeId}/"
	attendancePath = "/attendance/"
)

// errorBody is the `{error}` document the remote service sends on refusal.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

var (
	_ employee.Gateway   = (*Client)(nil)
	_ attendance.Gateway = (*Client)(nil)
	_ store.Fetcher      = (*Client)(nil)
)

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("gateway")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gateway")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetLogger(l.Sugar())

	return &Client{http: hc, logger: l}
}

// BaseURL is the resolved collection root, without a trailing slash.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetError(&errorBody{})
	if id := contextutil.GetRequestID(ctx); id != "" {
		req.SetHeader(contextutil.HeaderRequestID, id)
	}
	return req
}

func (c *Client) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	resp, err := c.request(ctx).SetResult(&out).Get(employeesPath)
	if err := c.check(ctx, "list employees", resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []employee.Employee{}
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in employee.CreateEmployeeRequest) (employee.Employee, error) {
	var out employee.Employee
	resp, err := c.request(ctx).SetBody(in).SetResult(&out).Post(employeesPath)
	if err := c.check(ctx, "create employee", resp, err); err != nil {
		return employee.Employee{}, err
	}
	return out, nil
}

func (c *Client) DeleteEmployee(ctx context.Context, employeeID string) error {
	resp, err := c.request(ctx).
		SetPathParam("employeeId", employeeID).
		Delete(employeePath)
	return c.check(ctx, "delete employee", resp, err)
}

func (c *Client) ListAttendance(ctx context.Context) ([]attendance.Record, error) {
	var out []attendance.Record
	resp, err := c.request(ctx).SetResult(&out).Get(attendancePath)
	if err := c.check(ctx, "list attendance", resp, err); err != nil {
		return nil, err
	}
	if out == nil {
		out = []attendance.Record{}
	}
	return out, nil
}

func (c *Client) CreateAttendance(ctx context.Context, in attendance.MarkAttendanceRequest) (attendance.Record, error) {
	var out attendance.Record
	resp, err := c.request(ctx).SetBody(in).SetResult(&out).Post(attendancePath)
	if err := c.check(ctx, "mark attendance", resp, err); err != nil {
		return attendance.Record{}, err
	}
	return out, nil
}

// check classifies a round trip into the client error taxonomy:
// transport failure and 5xx are network failures, 404 is not found and any
// other refusal is a validation conflict carrying the remote message. A 2xx
// whose body cannot be decoded is a bad response from a reachable service.
func (c *Client) check(ctx context.Context, op string, resp *resty.Response, err error) error {
	log := contextutil.GetLogger(ctx, c.logger)

	if err != nil && resp != nil && resp.IsSuccess() {
		status := resp.StatusCode()
		log.Error(op+" bad response", zap.Int("status", status), zap.Error(err))
		return apperror.Wrap(err, apperror.CodeServiceUnavailable, "Remote service sent an invalid response", status)
	}
	if err != nil {
		log.Error(op+" transport failure", zap.Error(err))
		msg := "Remote service unreachable"
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			msg = "Remote service timed out"
		}
		return apperror.Wrap(err, apperror.CodeNetworkFailure, msg, 0)
	}

	status := resp.StatusCode()
	if !resp.IsError() {
		log.Debug(op+" ok", zap.Int("status", status), zap.Duration("took", resp.Time()))
		return nil
	}

	remote := &apperror.RemoteError{Status: status}
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		remote.Message = body.Error
	}

	switch {
	case status >= http.StatusInternalServerError:
		log.Error(op+" remote failure", zap.Int("status", status), zap.String("error", remote.Message))
		return apperror.Wrap(remote, apperror.CodeServiceUnavailable, "Remote service failed", status)
	case status == http.StatusNotFound:
		log.Warn(op+" not found", zap.String("error", remote.Message))
		return apperror.Wrap(remote, apperror.CodeNotFound, messageOr(remote.Message, "Not found"), status)
	default:
		log.Warn(op+" rejected", zap.Int("status", status), zap.String("error", remote.Message))
		return apperror.Wrap(remote, apperror.CodeValidationConflict, messageOr(remote.Message, fmt.Sprintf("Rejected with status %d", status)), status)
	}
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

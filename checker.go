package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"ocpp16/internal"
	"ocpp16/metrics/counters"
	"ocpp16/ocpp"
	"ocpp16/registry"
	"ocpp16/types"
)

var errUnknownKind = errors.New("kind must be request or response")

// record is one line of checker input.
type record struct {
	Id      string          `json:"id"`
	Action  string          `json:"action"`
	Kind    string          `json:"kind"`
	Payload json.RawMessage `json:"payload"`
}

// rejection is written to the report for every record that failed.
type rejection struct {
	Line   int            `json:"line"`
	Id     string         `json:"id"`
	Action string         `json:"action"`
	Kind   string         `json:"kind"`
	Code   ocpp.ErrorCode `json:"code"`
	Error  string         `json:"error"`
}

type summary struct {
	Accepted int
	Rejected int
}

type checker struct {
	registry    *registry.Registry
	logger      internal.LogHandler
	echoPayload bool
	report      *json.Encoder
}

func newChecker(reg *registry.Registry, logger internal.LogHandler, report io.Writer, echoPayload bool) *checker {
	return &checker{
		registry:    reg,
		logger:      logger,
		echoPayload: echoPayload,
		report:      json.NewEncoder(report),
	}
}

// run checks every non-empty line of input. It stops early only when input cannot be read.
func (c *checker) run(input io.Reader, maxLineBytes int) (summary, error) {
	var result summary
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLineBytes)), maxLineBytes)
	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}
		if c.check(line, data) {
			result.Accepted++
		} else {
			result.Rejected++
		}
	}
	if err := scanner.Err(); err != nil {
		c.logger.Error(fmt.Sprintf("reading input after line %d", line), err)
		return result, err
	}
	return result, nil
}

func (c *checker) check(line int, data []byte) bool {
	var rec record
	if err := types.Unmarshal(data, &rec); err != nil {
		c.reject(line, rec, fmt.Errorf("record: %w", err))
		return false
	}
	if rec.Id == "" {
		rec.Id = uuid.NewString()
	}
	if rec.Kind == "" {
		rec.Kind = counters.KindRequest
	}

	var message ocpp.Message
	var err error
	switch rec.Kind {
	case counters.KindRequest:
		message, err = c.registry.ParseRequest(rec.Action, rec.Payload)
	case counters.KindResponse:
		message, err = c.registry.ParseResponse(rec.Action, rec.Payload)
	default:
		c.logger.Warn(fmt.Sprintf("line %d: unknown kind %q", line, rec.Kind))
		err = fmt.Errorf("%q: %w", rec.Kind, errUnknownKind)
	}
	if err != nil {
		c.reject(line, rec, err)
		return false
	}

	encoded, err := c.registry.Marshal(message)
	if err != nil {
		c.reject(line, rec, err)
		return false
	}
	text := rec.Kind + " accepted"
	if c.echoPayload {
		text = fmt.Sprintf("%s: %s", text, encoded)
	}
	c.logger.FeatureEvent(rec.Action, rec.Id, text)
	return true
}

func (c *checker) reject(line int, rec record, err error) {
	code := ocpp.ErrorCodeFor(err)
	c.logger.FeatureEvent(rec.Action, rec.Id, fmt.Sprintf("%s rejected: %s", rec.Kind, code))
	if encodeErr := c.report.Encode(rejection{
		Line:   line,
		Id:     rec.Id,
		Action: rec.Action,
		Kind:   rec.Kind,
		Code:   code,
		Error:  err.Error(),
	}); encodeErr != nil {
		c.logger.Error("writing report", encodeErr)
	}
}

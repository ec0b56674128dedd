// Command lambda is an AWS Lambda handler wrapping the driver for
// stateless cloud invocation, grounded directly on cmd/lambda/main.go's
// lambda.Start(HandleRequest) shape: a package-level config and NATS
// connection set up once in main, a HandleRequest that runs one unit of
// work under a hard wall-clock timeout, and a NATS acknowledgement sent
// back over a per-request reply channel with avast/retry-go handling the
// ack retry loop exactly the way the teacher retries its reply-channel
// request.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/tetris-pc/pcsolve/config"
	"github.com/tetris-pc/pcsolve/driver"
	"github.com/tetris-pc/pcsolve/logging"
	"github.com/tetris-pc/pcsolve/piece"
	"github.com/tetris-pc/pcsolve/record"
)

var pcfg config.ProcessConfig
var nc *nats.Conn

// HardTimeLimit bounds a single invocation's search time, the cloud-side
// counterpart to the CLI's unlimited local run.
const HardTimeLimit = 25 // seconds

// Event is the §6 external-interface request, carried over the Lambda
// invocation payload plus the two cloud-specific addressing fields.
type Event struct {
	RequestID    string `json:"requestId"`
	ReplyChannel string `json:"replyChannel"`

	Field      string `json:"field"`
	Queue      string `json:"queue"`
	Hold       string `json:"hold"`
	Height     int    `json:"height"`
	MaxHeight  int    `json:"maxHeight"`
	Swap       bool   `json:"swap"`
	SearchType string `json:"searchType"`
	Combo      int    `json:"combo"`
	B2B        bool   `json:"b2b"`
	TwoLine    bool   `json:"twoLine"`
}

// Response is what HandleRequest reports back through Lambda's own return
// channel; the authoritative answer travels over NATS to ReplyChannel.
type Response struct {
	Solved   bool   `json:"solved"`
	Solution string `json:"solution"`
}

func HandleRequest(ctx context.Context, evt Event) (Response, error) {
	logger := log.With().Str("request-id", evt.RequestID).Logger()

	ctx, cancel := context.WithTimeout(ctx, HardTimeLimit*time.Second)
	defer cancel()

	system := piece.SRS
	req := driver.Request{
		FieldRows:  splitRows(evt.Field),
		Queue:      evt.Queue,
		Hold:       holdByte(evt.Hold),
		Height:     evt.Height,
		MaxHeight:  evt.MaxHeight,
		Swap:       evt.Swap,
		SearchType: parseSearchType(evt.SearchType),
		Combo:      evt.Combo,
		B2B:        evt.B2B,
		TwoLine:    evt.TwoLine,
		System:     system,
		Aborted:    func() bool { return ctx.Err() != nil },
	}

	result, err := driver.Solve(req)
	if err != nil {
		logger.Err(err).Msg("solve-failed")
		return Response{}, err
	}

	resp := Response{Solved: result.Solved, Solution: formatSolution(result.Solution)}

	if evt.ReplyChannel != "" {
		payload := []byte(resp.Solution)
		logger.Info().Msg("solve-success-sending-via-nats")
		err = retry.Do(
			func() error {
				_, err := nc.Request(evt.ReplyChannel, payload, 3*time.Second)
				return err
			},
			retry.Context(ctx),
			retry.OnRetry(func(n uint, err error) {
				logger.Err(err).Uint("n", n).Msg("did-not-receive-ack-try-again")
			}),
		)
		if err != nil {
			logger.Err(err).Msg("solve-ack-failed")
		}
	}

	return resp, nil
}

func main() {
	args := os.Args[1:]
	if err := pcfg.Load(args); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logging.Setup(pcfg.LogLevel)
	log.Info().Interface("config", pcfg).Msg("loaded config")

	natsURL := os.Getenv("PCSOLVE_NATS_URL")
	if natsURL == "" {
		natsURL = nats.DefaultURL
	}
	var err error
	nc, err = nats.Connect(natsURL)
	if err != nil {
		log.Fatal().AnErr("natsConnectErr", err).Msg("nats connect failed")
	}

	lambda.Start(HandleRequest)
}

func splitRows(s string) []string {
	var rows []string
	cur := make([]byte, 0, 10)
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			rows = append(rows, string(cur))
			cur = cur[:0]
			continue
		}
		cur = append(cur, s[i])
	}
	rows = append(rows, string(cur))
	return rows
}

func holdByte(s string) byte {
	if len(s) == 0 {
		return 'E'
	}
	return s[0]
}

func formatSolution(sol record.Solution) string {
	parts := lo.Map(sol, func(op record.Operation, _ int) string {
		return fmt.Sprintf("%s,%d,%d,%d", op.Type, op.X, op.Y, op.Rotate)
	})
	return strings.Join(parts, "|")
}

func parseSearchType(s string) driver.SearchType {
	switch s {
	case "tspin":
		return driver.TSpin
	case "allspin":
		return driver.AllSpins
	case "tetrios2":
		return driver.TETRIOS2
	default:
		return driver.Fast
	}
}

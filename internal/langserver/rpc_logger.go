// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package langserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/creachadair/jrpc2"
)

// rpcLogger logs every inbound message and the matching response.
// Document text can be large, so params are truncated.
type rpcLogger struct {
	logger *log.Logger
}

const maxLoggedPayload = 512

func (rl *rpcLogger) LogRequest(ctx context.Context, req *jrpc2.Request) {
	kind := "request"
	idStr := ""
	if req.IsNotification() {
		kind = "notification"
	} else {
		idStr = fmt.Sprintf(" (ID %s)", req.ID())
	}

	var params json.RawMessage
	req.UnmarshalParams(&params)

	rl.logger.Printf("Incoming %s for %q%s: %s",
		kind, req.Method(), idStr, truncate(params))
}

func (rl *rpcLogger) LogResponse(ctx context.Context, rsp *jrpc2.Response) {
	req := jrpc2.InboundRequest(ctx)
	method := ""
	if req != nil {
		method = req.Method()
	}

	if err := rsp.Error(); err != nil {
		rl.logger.Printf("Error for %q (ID %s): %s", method, rsp.ID(), err)
		return
	}

	var body json.RawMessage
	rsp.UnmarshalResult(&body)
	rl.logger.Printf("Response to %q (ID %s): %s", method, rsp.ID(), truncate(body))
}

func truncate(b []byte) string {
	if len(b) <= maxLoggedPayload {
		return string(b)
	}
	return fmt.Sprintf("%s... (%d bytes)", b[:maxLoggedPayload], len(b))
}

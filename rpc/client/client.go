// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - JSON RPC client for a chain node
//
// the client satisfies the assembler's chain state so transactions
// can be built against a remote node, headers are immutable once
// committed so they are cached
package client

import (
	"context"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/daocertificate/cell"
	"github.com/bitmark-inc/daocertificate/digest"
	"github.com/bitmark-inc/daocertificate/ledger"
	"github.com/bitmark-inc/daocertificate/rpc/cells"
	"github.com/bitmark-inc/daocertificate/rpc/faucet"
	"github.com/bitmark-inc/daocertificate/rpc/headers"
	"github.com/bitmark-inc/daocertificate/rpc/node"
	"github.com/bitmark-inc/daocertificate/rpc/transaction"
	"github.com/bitmark-inc/logger"
)

const (
	dialTimeout      = 10 * time.Second
	headerExpiration = 30 * time.Minute
	headerCleanup    = time.Hour
)

// Client - a connection to one node
type Client struct {
	log     *logger.L
	client  *rpc.Client
	headers *cache.Cache
}

// Dial - connect to a node's JSON RPC listener
func Dial(address string) (*Client, error) {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if nil != err {
		return nil, err
	}
	return New(conn), nil
}

// New - client over an existing connection
func New(conn io.ReadWriteCloser) *Client {
	return &Client{
		log:     logger.New("client"),
		client:  jsonrpc.NewClient(conn),
		headers: cache.New(headerExpiration, headerCleanup),
	}
}

// Close - release the connection
func (c *Client) Close() error {
	return c.client.Close()
}

// call a remote method, giving up when the context ends
func (c *Client) call(ctx context.Context, method string, arguments interface{}, reply interface{}) error {
	if err := ctx.Err(); nil != err {
		return err
	}
	call := c.client.Go(method, arguments, reply, make(chan *rpc.Call, 1))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		if nil != done.Error {
			c.log.Debugf("%s error: %s", method, done.Error)
		}
		return done.Error
	}
}

// Info - node status
func (c *Client) Info(ctx context.Context) (*node.InfoReply, error) {
	var reply node.InfoReply
	err := c.call(ctx, "Node.Info", &node.InfoArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// LiveCell - fetch one live cell
func (c *Client) LiveCell(ctx context.Context, outPoint cell.OutPoint) (*cell.LiveCell, error) {
	var reply cells.GetReply
	err := c.call(ctx, "Cells.Get", &cells.GetArguments{OutPoint: outPoint}, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Cell, nil
}

// FindCells - search live cells
func (c *Client) FindCells(ctx context.Context, query *ledger.Query) ([]*cell.LiveCell, error) {
	var reply cells.FindReply
	err := c.call(ctx, "Cells.Find", query, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Cells, nil
}

// Header - fetch a header by hash
func (c *Client) Header(ctx context.Context, hash digest.Digest) (*cell.Header, error) {
	if h, found := c.headers.Get(hash.String()); found {
		return h.(*cell.Header), nil
	}

	var reply headers.GetReply
	err := c.call(ctx, "Headers.Get", &headers.GetArguments{Hash: &hash}, &reply)
	if nil != err {
		return nil, err
	}

	c.headers.SetDefault(hash.String(), reply.Header)
	return reply.Header, nil
}

// Tip - the highest header
func (c *Client) Tip(ctx context.Context) (*cell.Header, error) {
	var reply headers.GetReply
	err := c.call(ctx, "Headers.Tip", &headers.TipArguments{}, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Header, nil
}

// Verify - run every predicate on the node without committing
func (c *Client) Verify(ctx context.Context, tx *cell.Transaction) (*transaction.VerifyReply, error) {
	var reply transaction.VerifyReply
	err := c.call(ctx, "Transaction.Verify", &transaction.Arguments{Transaction: tx}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Submit - verify and commit a transaction
func (c *Client) Submit(ctx context.Context, tx *cell.Transaction) (*transaction.SubmitReply, error) {
	var reply transaction.SubmitReply
	err := c.call(ctx, "Transaction.Submit", &transaction.Arguments{Transaction: tx}, &reply)
	if nil != err {
		return nil, err
	}
	return &reply, nil
}

// Status - block number of a committed transaction
func (c *Client) Status(ctx context.Context, txHash digest.Digest) (uint64, error) {
	var reply transaction.StatusReply
	err := c.call(ctx, "Transaction.Status", &transaction.StatusArguments{TxHash: txHash}, &reply)
	if nil != err {
		return 0, err
	}
	return reply.BlockNumber, nil
}

// Fund - request a plain cell from a simulated network
func (c *Client) Fund(ctx context.Context, lock cell.Script, capacity uint64) (cell.OutPoint, error) {
	var reply faucet.Reply
	err := c.call(ctx, "Faucet.Fund", &faucet.Arguments{Lock: lock, Capacity: capacity}, &reply)
	if nil != err {
		return cell.OutPoint{}, err
	}
	return reply.OutPoint, nil
}

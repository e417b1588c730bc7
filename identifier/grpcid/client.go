package grpcid

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/rinchi/rinchi"
)

// Client implements rinchi.Identifier over the Identifier gRPC service.
// It is safe for concurrent use.
type Client struct {
	cc     *grpc.ClientConn
	client IdentifierClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

var _ rinchi.Identifier = (*Client)(nil)

type DialOptions struct {
	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
	// Extra is appended to the default dial options.
	Extra []grpc.DialOption
}

// Dial connects to target without transport security. The connection is
// established lazily on the first call.
func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}
	dialOpts = append(dialOpts, opts.Extra...)

	cc, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewIdentifierClient(cc)}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) Identify(m rinchi.Molecule) (string, error) {
	if c == nil || c.client == nil {
		return "", ErrUnavailable
	}
	var in []byte
	switch v := m.(type) {
	case string:
		in = []byte(v)
	case []byte:
		in = v
	default:
		return "", fmt.Errorf("grpcid: unsupported molecule type %T", m)
	}

	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Identify(ctx, wrapperspb.Bytes(in))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}

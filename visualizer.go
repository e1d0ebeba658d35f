package meshcat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inercia/meshcat-go/animation"
	"github.com/inercia/meshcat-go/geometry"
	"github.com/inercia/meshcat-go/internal/transport"
	"github.com/inercia/meshcat-go/pose"
	"github.com/inercia/meshcat-go/wire"
)

// DefaultEndpoint is where a locally started meshcat-server listens.
const DefaultEndpoint = "tcp://127.0.0.1:6000"

// DefaultTimeout bounds each command round trip when the caller's context
// carries no deadline.
const DefaultTimeout = 30 * time.Second

// Transport is a one-way, ordered command channel to the server. The
// default transports are selected from the endpoint scheme; tests and
// embedders can substitute their own.
type Transport interface {
	Send(ctx context.Context, kind, path string, payload []byte) error
	Close() error
}

// Visualizer is the client handle to a meshcat viewer. All methods are safe
// for concurrent use; commands issued through a single Visualizer reach the
// viewer in call order.
type Visualizer struct {
	endpoint string
	tr       Transport
	scene    *Scene
	logger   *slog.Logger
	timeout  time.Duration
}

// Option configures the Visualizer.
type Option func(*Visualizer)

// WithLogger sets the logger. The default is slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Visualizer) { v.logger = logger }
}

// WithTimeout sets the per-command timeout used when the caller's context
// has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(v *Visualizer) { v.timeout = d }
}

// WithTransport replaces the dialed transport. When set, the endpoint is
// not dialed.
func WithTransport(tr Transport) Option {
	return func(v *Visualizer) { v.tr = tr }
}

// New connects to a meshcat server. The endpoint scheme picks the
// transport: tcp:// dials the meshcat-server ZMQ bridge, ws:// and wss://
// talk straight to a viewer. An empty endpoint means DefaultEndpoint.
func New(endpoint string, opts ...Option) (*Visualizer, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	v := &Visualizer{
		endpoint: endpoint,
		scene:    NewScene(),
		logger:   slog.Default(),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.tr == nil {
		ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
		defer cancel()
		tr, err := transport.Dial(ctx, endpoint, v.logger)
		if err != nil {
			return nil, fmt.Errorf("connect to meshcat server: %w", err)
		}
		v.tr = tr
	}
	return v, nil
}

// Endpoint returns the configured server endpoint.
func (v *Visualizer) Endpoint() string { return v.endpoint }

// Scene returns the client-side mirror of the viewer's scene graph.
func (v *Visualizer) Scene() *Scene { return v.scene }

// SetObject creates or replaces the object at path.
func (v *Visualizer) SetObject(ctx context.Context, path string, obj *geometry.Object) error {
	p := NormalizePath(path)
	if err := v.send(ctx, wire.NewSetObject(p, obj)); err != nil {
		return err
	}
	v.scene.setObject(p, obj)
	return nil
}

// SetTransform sets the rigid transform of the node at path.
func (v *Visualizer) SetTransform(ctx context.Context, path string, p pose.Pose) error {
	normalized := NormalizePath(path)
	if err := v.send(ctx, wire.NewSetTransform(normalized, p)); err != nil {
		return err
	}
	v.scene.setTransform(normalized, p)
	return nil
}

// SetProperty sets a named property on the node at path.
func (v *Visualizer) SetProperty(ctx context.Context, path string, prop wire.Property) error {
	p := NormalizePath(path)
	if err := v.send(ctx, wire.NewSetProperty(p, prop)); err != nil {
		return err
	}
	v.scene.setProperty(p, prop.Name, prop.Value)
	return nil
}

// Delete removes the node at path and its whole subtree. Nodes only
// disappear through Delete; there is no implicit destruction.
func (v *Visualizer) Delete(ctx context.Context, path string) error {
	p := NormalizePath(path)
	if err := v.send(ctx, wire.NewDelete(p)); err != nil {
		return err
	}
	v.scene.remove(p)
	return nil
}

// SetAnimation installs keyframed clips on the viewer and starts playback
// according to opts.
func (v *Visualizer) SetAnimation(ctx context.Context, anim *animation.Animation, opts animation.Options) error {
	return v.send(ctx, anim.Command(opts))
}

// Close tears down the connection. The scene mirror stays readable.
func (v *Visualizer) Close() error {
	return v.tr.Close()
}

func (v *Visualizer) send(ctx context.Context, cmd wire.Command) error {
	payload, err := wire.Marshal(cmd)
	if err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok && v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}
	if err := v.tr.Send(ctx, cmd.CommandKind(), cmd.CommandPath(), payload); err != nil {
		return err
	}
	v.logger.Debug("sent command",
		"kind", cmd.CommandKind(), "path", cmd.CommandPath(), "bytes", len(payload))
	return nil
}

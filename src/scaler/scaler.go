// Package scaler turns full-size cover images into preview thumbnails on a
// fixed pool of workers so that an image-heavy page cannot saturate the CPU.
package scaler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"runtime"

	// Image formats which can be decoded for scaling.
	_ "image/gif"
	_ "image/png"

	// Additional formats from the x repository. Covers in the wild come
	// in all of these.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// ErrPoolStopped is returned for thumbnail requests made after the pool was
// stopped.
var ErrPoolStopped = errors.New("thumbnail request on a stopped scaler pool")

// job is one queued thumbnail request.
type job struct {
	img     io.Reader
	toWidth int
	done    chan outcome
}

type outcome struct {
	jpeg []byte
	err  error
}

// Pool scales images on a fixed number of worker goroutines, one per CPU.
type Pool struct {
	ctx    context.Context
	cancel context.CancelFunc

	jobs chan job
}

// NewPool starts the workers and returns a pool ready for use. Cancelling
// the context stops the pool.
func NewPool(ctx context.Context) *Pool {
	ctx, cancel := context.WithCancel(ctx)

	p := &Pool{
		ctx:    ctx,
		cancel: cancel,
		jobs:   make(chan job),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < runtime.NumCPU(); i++ {
		g.Go(func() error {
			return p.worker(gctx)
		})
	}

	return p
}

// Thumbnail scales the image read from img down to toWidth pixels, keeping
// its aspect ratio, and returns it encoded as JPEG.
func (p *Pool) Thumbnail(
	ctx context.Context,
	img io.Reader,
	toWidth int,
) ([]byte, error) {
	if p.ctx.Err() != nil {
		return nil, ErrPoolStopped
	}

	queued := job{
		img:     img,
		toWidth: toWidth,
		done:    make(chan outcome),
	}

	select {
	case p.jobs <- queued:
	case <-p.ctx.Done():
		return nil, ErrPoolStopped
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for a free scaler worker: %w", ctx.Err())
	}

	res := <-queued.done
	return res.jpeg, res.err
}

// Stop shuts down the pool. The pool is not usable afterwards.
func (p *Pool) Stop() {
	p.cancel()
}

func (p *Pool) worker(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case queued := <-p.jobs:
			scaled, err := scaleImage(queued.img, queued.toWidth)
			queued.done <- outcome{jpeg: scaled, err: err}
		}
	}
}

func scaleImage(imgReader io.Reader, toWidth int) ([]byte, error) {
	img, _, err := image.Decode(imgReader)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()

	toHeight := toWidth
	if srcWidth != srcHeight {
		toHeight = int(float64(srcHeight) / float64(srcWidth) * float64(toWidth))
	}

	dst := image.NewRGBA(image.Rect(0, 0, toWidth, toHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, nil); err != nil {
		return nil, fmt.Errorf("encoding thumbnail: %w", err)
	}

	return buf.Bytes(), nil
}

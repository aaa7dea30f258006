package main

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// rasterize screenshots svg in a headless browser and writes the PNG to w.
func rasterize(ctx context.Context, logger *zap.Logger, svg []byte, w io.Writer) error {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	bctx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var buf []byte
	logger.Debug("rasterizing svg", zap.Int("bytes", len(svg)))
	err := chromedp.Run(bctx,
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("chromedp: %w", err)
	}
	if len(buf) == 0 {
		return errors.New("chromedp: empty screenshot")
	}

	_, err = w.Write(buf)
	return err
}

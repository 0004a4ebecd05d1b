package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF for DecodeConfig
	_ "image/jpeg" // Register JPEG for DecodeConfig
	_ "image/png"  // Register PNG for DecodeConfig
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/report"
	"github.com/rs/zerolog/log"
)

// ReportFetchTimeout limits the time to fetch a single image for a report.
var ReportFetchTimeout = 5 * time.Second

// ReportAllowPrivateHosts allows fetching report images from loopback,
// private and link local addresses.
var ReportAllowPrivateHosts bool

// maxImageSize is the maximum size of images fetched for reports.
const maxImageSize = 5 << 20

var (
	errImageScheme      = errors.New("only http and https image URLs are fetched")
	errImagePrivateHost = errors.New("image host resolves to a private address")
	errImageTooLarge    = fmt.Errorf("image is larger than %d bytes", maxImageSize)
)

// imageClient fetches report images. The dialer checks the resolved
// address of every connection, including redirects.
var imageClient = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: 5 * time.Second,
			Control: checkImageAddress,
		}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
	},
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) >= 5 {
			return errors.New("too many redirects")
		}
		return checkImageScheme(req.URL)
	},
}

func checkImageScheme(u *url.URL) error {
	if u.Scheme != "http" && u.Scheme != "https" {
		return errImageScheme
	}
	return nil
}

func checkImageAddress(_, address string, _ syscall.RawConn) error {
	if ReportAllowPrivateHosts {
		return nil
	}

	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return fmt.Errorf("%w: %s", errImagePrivateHost, host)
	}

	if ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsMulticast() {
		return fmt.Errorf("%w: %s", errImagePrivateHost, ip)
	}

	return nil
}

// fetchImage fetches an image for a report. Errors are logged and nil is
// returned, the report is rendered without the image.
func fetchImage(c *gin.Context, rawURL string) *report.Image {
	if rawURL == "" {
		return nil
	}

	logger := log.With().Str("request-id", requestid.Get(c)).Str("url", rawURL).Logger()

	img, err := downloadImage(c.Request.Context(), rawURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Report image")
		return nil
	}

	return img
}

func downloadImage(ctx context.Context, rawURL string) (*report.Image, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	if err := checkImageScheme(u); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, ReportFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := imageClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, err
	}

	if len(data) > maxImageSize {
		return nil, errImageTooLarge
	}

	kind, err := imageType(data)
	if err != nil {
		return nil, err
	}

	return &report.Image{Data: data, Type: kind}, nil
}

// imageType returns the image type for the renderer from the decoded
// image header.
func imageType(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	switch format {
	case "png":
		return "PNG", nil
	case "jpeg":
		return "JPG", nil
	case "gif":
		return "GIF", nil
	}

	return "", fmt.Errorf("unsupported image format %s", format)
}

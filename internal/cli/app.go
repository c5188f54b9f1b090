package cli

import (
	"fmt"
	"io"

	"github.com/desertwitch/bprop/internal/btrfs"
	"github.com/desertwitch/bprop/internal/device"
	"github.com/desertwitch/bprop/internal/props"
	"github.com/desertwitch/bprop/internal/schema"
)

// app bundles the fully wired property dispatcher and type detector
// behind which all commands operate.
type app struct {
	propsHandler *props.Handler
	detector     *props.Detector
}

// newApp wires the live system backends into an [app]. Property values read
// in get mode are written to out.
func newApp(out io.Writer) (*app, error) {
	osHandler := &schema.OS{}
	unixHandler := &schema.Unix{}
	ioctlHandler := &schema.Ioctl{}
	xattrHandler := &schema.Xattr{}

	btrfsHandler := btrfs.NewHandler(osHandler, unixHandler, ioctlHandler)
	mountHandler := device.NewMountinfoProvider(unixHandler)
	deviceHandler := device.NewHandler(mountHandler, osHandler, unixHandler, btrfsHandler)

	propsHandler, err := props.NewHandler(out, btrfsHandler, deviceHandler, osHandler, xattrHandler)
	if err != nil {
		return nil, fmt.Errorf("(cli) failed to wire property handler: %w", err)
	}

	return &app{
		propsHandler: propsHandler,
		detector:     props.NewDetector(osHandler, unixHandler, btrfsHandler, mountHandler),
	}, nil
}

// objectTypes returns the type mask to address object as, honoring an
// explicit -t flag over auto-detection.
func (a *app) objectTypes(object string) (props.ObjectTypes, error) {
	if typeFlag != "" {
		return props.ParseObjectTypes(typeFlag)
	}

	return a.detector.Detect(object)
}

//go:build linux

package display

import (
	"encoding/binary"
	"fmt"
	"image"
	"os"
	"unsafe"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"airframe/internal/domain"
)

// ioctl requests from linux/fb.h
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// fbBitfield mirrors struct fb_bitfield
type fbBitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// fbVarScreenInfo mirrors struct fb_var_screeninfo
type fbVarScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          fbBitfield
	Green        fbBitfield
	Blue         fbBitfield
	Transp       fbBitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32
	Width        uint32
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// fbFixScreenInfo mirrors struct fb_fix_screeninfo
type fbFixScreenInfo struct {
	ID           [16]byte
	SMemStart    uintptr
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Framebuffer presents frames directly into the kernel framebuffer
type Framebuffer struct {
	logger       *zap.Logger
	file         *os.File
	mem          []byte
	width        int
	height       int
	stride       int
	bpp          int
	resizeLogged bool
}

// OpenFramebuffer maps the device and reads its geometry. The returned
// sink accepts frames of any size and rescales on mismatch.
func OpenFramebuffer(logger *zap.Logger, device string) (domain.FrameSink, error) {
	file, err := os.OpenFile(device, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer: %w", err)
	}

	var vinfo fbVarScreenInfo
	if err := ioctl(file.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("read framebuffer geometry: %w", err)
	}

	var finfo fbFixScreenInfo
	if err := ioctl(file.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("read framebuffer layout: %w", err)
	}

	if vinfo.BitsPerPixel != 16 && vinfo.BitsPerPixel != 32 {
		file.Close()
		return nil, fmt.Errorf("unsupported framebuffer depth: %d bpp", vinfo.BitsPerPixel)
	}

	mem, err := unix.Mmap(int(file.Fd()), 0, int(finfo.SMemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("map framebuffer: %w", err)
	}

	logger.Info("framebuffer opened",
		zap.String("device", device),
		zap.Uint32("width", vinfo.XRes),
		zap.Uint32("height", vinfo.YRes),
		zap.Uint32("bpp", vinfo.BitsPerPixel),
		zap.Uint32("stride", finfo.LineLength))

	return &Framebuffer{
		logger: logger,
		file:   file,
		mem:    mem,
		width:  int(vinfo.XRes),
		height: int(vinfo.YRes),
		stride: int(finfo.LineLength),
		bpp:    int(vinfo.BitsPerPixel),
	}, nil
}

func ioctl(fd uintptr, request uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, request, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Present copies the frame into the mapped framebuffer, honoring the
// device stride and pixel depth.
func (fb *Framebuffer) Present(frame *image.RGBA) error {
	if frame.Bounds().Dx() != fb.width || frame.Bounds().Dy() != fb.height {
		if !fb.resizeLogged {
			fb.logger.Warn("frame size differs from framebuffer, rescaling",
				zap.Int("frame_width", frame.Bounds().Dx()),
				zap.Int("frame_height", frame.Bounds().Dy()),
				zap.Int("fb_width", fb.width),
				zap.Int("fb_height", fb.height))
			fb.resizeLogged = true
		}
		frame = toRGBA(imaging.Resize(frame, fb.width, fb.height, imaging.Lanczos))
	}

	switch fb.bpp {
	case 16:
		fb.writeRGB565(frame)
	case 32:
		fb.writeXRGB(frame)
	}
	return nil
}

func (fb *Framebuffer) writeRGB565(frame *image.RGBA) {
	for y := 0; y < fb.height; y++ {
		row := fb.mem[y*fb.stride:]
		src := frame.Pix[y*frame.Stride:]
		for x := 0; x < fb.width; x++ {
			si := x * 4
			binary.LittleEndian.PutUint16(row[x*2:], packRGB565(src[si], src[si+1], src[si+2]))
		}
	}
}

func (fb *Framebuffer) writeXRGB(frame *image.RGBA) {
	for y := 0; y < fb.height; y++ {
		row := fb.mem[y*fb.stride:]
		src := frame.Pix[y*frame.Stride:]
		for x := 0; x < fb.width; x++ {
			si := x * 4
			di := x * 4
			// Little-endian XRGB8888 lays out as B, G, R, X in memory.
			row[di+0] = src[si+2]
			row[di+1] = src[si+1]
			row[di+2] = src[si+0]
			row[di+3] = 0xFF
		}
	}
}

// Close unmaps and releases the device.
func (fb *Framebuffer) Close() error {
	if err := unix.Munmap(fb.mem); err != nil {
		fb.logger.Warn("unmap framebuffer", zap.Error(err))
	}
	return fb.file.Close()
}

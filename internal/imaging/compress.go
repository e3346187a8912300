package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Форматы, которые принимает загрузка.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatWEBP = "webp"
)

const (
	startQuality = 85
	minQuality   = 40
	qualityStep  = 10
	shrinkFactor = 0.8
	minDimension = 64

	// MaxSourcePixels ограничивает заявленный размер исходника до декодирования.
	MaxSourcePixels = 50_000_000
)

// ErrUnsupportedFormat возвращается для форматов вне списка.
var ErrUnsupportedFormat = errors.New("imaging: unsupported image format")

// ErrTooManyPixels возвращается, когда заголовок заявляет слишком большое изображение.
var ErrTooManyPixels = errors.New("imaging: image dimensions are too large")

// Options — ограничения результата.
type Options struct {
	MaxDimension int
	MaxBytes     int64
}

// DefaultOptions: длинная сторона до 1920 px, размер до 0.8 MB.
func DefaultOptions() Options {
	return Options{MaxDimension: 1920, MaxBytes: 800 * 1024}
}

// Result — сжатое изображение.
type Result struct {
	Data         []byte
	Format       string
	Width        int
	Height       int
	OriginalSize int64
}

// ContentType возвращает MIME-тип результата.
func (r *Result) ContentType() string {
	return "image/" + r.Format
}

// Ext возвращает расширение файла без точки.
func (r *Result) Ext() string {
	if r.Format == FormatJPEG {
		return "jpg"
	}
	return r.Format
}

// Compress уменьшает изображение до MaxDimension по длинной стороне и
// добивается размера не больше MaxBytes: сначала снижает качество JPEG,
// затем продолжает уменьшать размеры. Слишком большой файл не отклоняется.
func Compress(data []byte, opts Options) (*Result, error) {
	if opts.MaxDimension <= 0 || opts.MaxBytes <= 0 {
		def := DefaultOptions()
		if opts.MaxDimension <= 0 {
			opts.MaxDimension = def.MaxDimension
		}
		if opts.MaxBytes <= 0 {
			opts.MaxBytes = def.MaxBytes
		}
	}

	// заголовок читается без выделения памяти под пиксели
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxSourcePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}
	switch format {
	case FormatJPEG, FormatPNG, FormatGIF, FormatWEBP:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	b := src.Bounds()
	original := int64(len(data))

	// исходник уже подходит: отдаём как есть, без повторного сжатия
	if format != FormatWEBP && fits(b.Dx(), b.Dy(), opts.MaxDimension) && original <= opts.MaxBytes {
		return &Result{Data: data, Format: format, Width: b.Dx(), Height: b.Dy(), OriginalSize: original}, nil
	}

	img := resizeToFit(src, opts.MaxDimension)

	out, outFormat, err := encodeNative(img, format)
	if err != nil {
		return nil, err
	}

	quality := startQuality
	for int64(len(out)) > opts.MaxBytes {
		if outFormat != FormatJPEG || quality-qualityStep >= minQuality {
			if outFormat == FormatJPEG {
				quality -= qualityStep
			}
			outFormat = FormatJPEG
		} else {
			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			if w <= minDimension || h <= minDimension {
				break
			}
			img = scale(img, int(float64(w)*shrinkFactor), int(float64(h)*shrinkFactor))
		}

		out, err = encodeJPEG(img, quality)
		if err != nil {
			return nil, err
		}
	}

	rb := img.Bounds()
	return &Result{Data: out, Format: outFormat, Width: rb.Dx(), Height: rb.Dy(), OriginalSize: original}, nil
}

func fits(w, h, maxDim int) bool {
	return w <= maxDim && h <= maxDim
}

// resizeToFit сохраняет пропорции, длинная сторона не больше maxDim.
func resizeToFit(src image.Image, maxDim int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if fits(w, h, maxDim) {
		return src
	}
	if w >= h {
		return scale(src, maxDim, max(1, h*maxDim/w))
	}
	return scale(src, max(1, w*maxDim/h), maxDim)
}

func scale(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// encodeNative кодирует в исходный формат; для webp кодировщика нет, используется JPEG.
func encodeNative(img image.Image, format string) ([]byte, string, error) {
	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("imaging: encode png: %w", err)
		}
		return buf.Bytes(), FormatPNG, nil
	case FormatGIF:
		if err := gif.Encode(&buf, img, nil); err != nil {
			return nil, "", fmt.Errorf("imaging: encode gif: %w", err)
		}
		return buf.Bytes(), FormatGIF, nil
	}
	out, err := encodeJPEG(img, startQuality)
	return out, FormatJPEG, err
}

// encodeJPEG кладёт изображение на белый фон: у JPEG нет прозрачности.
func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	b := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(flat, flat.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(flat, flat.Bounds(), img, b.Min, draw.Over)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imaging: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

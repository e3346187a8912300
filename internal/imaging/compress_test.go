package imaging

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	return img
}

func noise(w, h int) *image.RGBA {
	rnd := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	rnd.Read(img.Pix)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEGFixture(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}))
	return buf.Bytes()
}

func TestCompress_SmallImageUntouched(t *testing.T) {
	data := encodePNG(t, gradient(40, 30))

	res, err := Compress(data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, data, res.Data)
	assert.Equal(t, FormatPNG, res.Format)
	assert.Equal(t, "image/png", res.ContentType())
	assert.Equal(t, 40, res.Width)
}

func TestCompress_DownscalesLongSide(t *testing.T) {
	data := encodeJPEGFixture(t, gradient(3000, 1500))

	res, err := Compress(data, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1920, res.Width)
	assert.Equal(t, 960, res.Height)
	assert.Equal(t, "jpg", res.Ext())
	assert.Equal(t, int64(len(data)), res.OriginalSize)

	decoded, _, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 1920, decoded.Bounds().Dx())
}

func TestCompress_PortraitKeepsAspect(t *testing.T) {
	data := encodeJPEGFixture(t, gradient(1000, 4000))

	res, err := Compress(data, Options{MaxDimension: 1000, MaxBytes: 10 << 20})
	require.NoError(t, err)
	assert.Equal(t, 250, res.Width)
	assert.Equal(t, 1000, res.Height)
}

func TestCompress_FitsByteBudget(t *testing.T) {
	data := encodePNG(t, noise(600, 600))
	opts := Options{MaxDimension: 1920, MaxBytes: 30 * 1024}

	res, err := Compress(data, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, int64(len(res.Data)), opts.MaxBytes)
	assert.Equal(t, FormatJPEG, res.Format)
	assert.Less(t, res.Width, 600)
}

func TestCompress_RejectsGarbage(t *testing.T) {
	_, err := Compress([]byte("definitely not an image"), DefaultOptions())
	assert.Error(t, err)
}

// withDeclaredSize переписывает ширину и высоту в IHDR и пересчитывает CRC чанка.
func withDeclaredSize(t *testing.T, pngData []byte, w, h uint32) []byte {
	t.Helper()
	out := append([]byte(nil), pngData...)
	// сигнатура 8 байт, длина 4, тип "IHDR" 4, данные IHDR 13, CRC 4
	require.Equal(t, "IHDR", string(out[12:16]))
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

func TestCompress_RejectsHugeDeclaredDimensions(t *testing.T) {
	data := withDeclaredSize(t, encodePNG(t, gradient(4, 4)), 100_000, 100_000)

	_, err := Compress(data, DefaultOptions())
	assert.ErrorIs(t, err, ErrTooManyPixels)
}

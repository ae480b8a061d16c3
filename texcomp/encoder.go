package texcomp

// Encoder is the block-compression backend: the Go shape of the ispc_texcomp
// C API. Compression methods encode every whole block of src into dst.
//
// Callers guarantee that src has been validated against the format's bytes
// per pixel, that dst holds at least PayloadSize bytes and that settings is
// non-nil. Implementations never retain src, dst or settings.
type Encoder interface {
	// Name identifies the backend ("go" or "ispc").
	Name() string

	CompressBlocksBC1(src *Surface, dst []byte)
	CompressBlocksBC3(src *Surface, dst []byte)
	CompressBlocksBC4(src *Surface, dst []byte)
	CompressBlocksBC5(src *Surface, dst []byte)
	CompressBlocksBC6H(src *Surface, dst []byte, settings *BC6HEncSettings)
	CompressBlocksBC7(src *Surface, dst []byte, settings *BC7EncSettings)
	CompressBlocksETC1(src *Surface, dst []byte, settings *ETCEncSettings)
	CompressBlocksASTC(src *Surface, dst []byte, settings *ASTCEncSettings)

	// ReplicateBorders fills dst with the dst-sized window of src at (x, y),
	// clamping reads past the right and bottom edges of src.
	ReplicateBorders(dst, src *Surface, x, y, bitsPerPixel int)
}

// Compressor validates requests and hands them to an Encoder.
//
// A Compressor is stateless and safe for concurrent use when its Encoder is.
type Compressor struct {
	enc Encoder
}

// NewCompressor returns a Compressor over enc. A nil enc selects the portable
// encoder.
func NewCompressor(enc Encoder) *Compressor {
	if enc == nil {
		enc = Portable()
	}
	return &Compressor{enc: enc}
}

// Encoder returns the backend.
func (c *Compressor) Encoder() Encoder { return c.enc }

var defaultCompressor = NewCompressor(nil)

// Default returns the Compressor used by the package-level functions. It runs
// the portable encoder.
func Default() *Compressor { return defaultCompressor }

func CompressBlocksBC1(src *Surface) ([]byte, error) { return defaultCompressor.CompressBlocksBC1(src) }
func CompressBlocksBC3(src *Surface) ([]byte, error) { return defaultCompressor.CompressBlocksBC3(src) }
func CompressBlocksBC4(src *Surface) ([]byte, error) { return defaultCompressor.CompressBlocksBC4(src) }
func CompressBlocksBC5(src *Surface) ([]byte, error) { return defaultCompressor.CompressBlocksBC5(src) }

func CompressBlocksBC6H(src *Surface, settings *BC6HEncSettings) ([]byte, error) {
	return defaultCompressor.CompressBlocksBC6H(src, settings)
}

func CompressBlocksBC7(src *Surface, settings *BC7EncSettings) ([]byte, error) {
	return defaultCompressor.CompressBlocksBC7(src, settings)
}

func CompressBlocksETC1(src *Surface, settings *ETCEncSettings) ([]byte, error) {
	return defaultCompressor.CompressBlocksETC1(src, settings)
}

func CompressBlocksASTC(src *Surface, settings *ASTCEncSettings) ([]byte, error) {
	return defaultCompressor.CompressBlocksASTC(src, settings)
}

// CompressBlocks dispatches on f. See Compressor.CompressBlocks.
func CompressBlocks(f Format, src *Surface, settings any) ([]byte, error) {
	return defaultCompressor.CompressBlocks(f, src, settings)
}

// ReplicateBorders copies the dst-sized window at (x, y) from src into dst.
// See Compressor.ReplicateBorders.
func ReplicateBorders(dst, src *Surface, x, y, bitsPerPixel int) error {
	return defaultCompressor.ReplicateBorders(dst, src, x, y, bitsPerPixel)
}

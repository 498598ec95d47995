package pixconv

// BytesFunc converts n pixels between two byte-packed buffers.
type BytesFunc func(dst []byte, dstOff int, src []byte, srcOff, n int) error

// PackFunc converts n byte-packed pixels into word-packed pixels.
type PackFunc func(dst []uint32, dstOff int, src []byte, srcOff, n int) error

// UnpackFunc converts n word-packed pixels into byte-packed pixels.
type UnpackFunc func(dst []byte, dstOff int, src []uint32, srcOff, n int) error

// WordsFunc converts n pixels between two word-packed buffers.
type WordsFunc func(dst []uint32, dstOff int, src []uint32, srcOff, n int) error

// Named conversions used by codecs and scalers. Each one is a method value
// of a table entry; Lookup reaches the same entries for any other pair.

// Byte-packed to byte-packed.
var (
	GrayBytesToAXYZBytes       BytesFunc = MustLookup(FormatGrayBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToGrayBytes       BytesFunc = MustLookup(FormatAXYZBytes, FormatGrayBytes).ConvertBytes
	XYZBytesToAXYZBytes        BytesFunc = MustLookup(FormatXYZBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToXYZBytes        BytesFunc = MustLookup(FormatAXYZBytes, FormatXYZBytes).ConvertBytes
	ZYXBytesToAXYZBytes        BytesFunc = MustLookup(FormatZYXBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToZYXBytes        BytesFunc = MustLookup(FormatAXYZBytes, FormatZYXBytes).ConvertBytes
	AXYZPreBytesToAXYZBytes    BytesFunc = MustLookup(FormatAXYZPreBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToAXYZPreBytes    BytesFunc = MustLookup(FormatAXYZBytes, FormatAXYZPreBytes).ConvertBytes
	AZYXBytesToAXYZBytes       BytesFunc = MustLookup(FormatAZYXBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToAZYXBytes       BytesFunc = MustLookup(FormatAXYZBytes, FormatAZYXBytes).ConvertBytes
	AZYXPreBytesToAXYZBytes    BytesFunc = MustLookup(FormatAZYXPreBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToAZYXPreBytes    BytesFunc = MustLookup(FormatAXYZBytes, FormatAZYXPreBytes).ConvertBytes
	XYZABytesToAXYZBytes       BytesFunc = MustLookup(FormatXYZABytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToXYZABytes       BytesFunc = MustLookup(FormatAXYZBytes, FormatXYZABytes).ConvertBytes
	XYZAPreBytesToAXYZBytes    BytesFunc = MustLookup(FormatXYZAPreBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToXYZAPreBytes    BytesFunc = MustLookup(FormatAXYZBytes, FormatXYZAPreBytes).ConvertBytes
	ZYXABytesToAXYZBytes       BytesFunc = MustLookup(FormatZYXABytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToZYXABytes       BytesFunc = MustLookup(FormatAXYZBytes, FormatZYXABytes).ConvertBytes
	ZYXAPreBytesToAXYZBytes    BytesFunc = MustLookup(FormatZYXAPreBytes, FormatAXYZBytes).ConvertBytes
	AXYZBytesToZYXAPreBytes    BytesFunc = MustLookup(FormatAXYZBytes, FormatZYXAPreBytes).ConvertBytes
	XYZBytesToZYXBytes         BytesFunc = MustLookup(FormatXYZBytes, FormatZYXBytes).ConvertBytes
	ZYXBytesToXYZBytes         BytesFunc = MustLookup(FormatZYXBytes, FormatXYZBytes).ConvertBytes
	GrayBytesToXYZBytes        BytesFunc = MustLookup(FormatGrayBytes, FormatXYZBytes).ConvertBytes
	XYZBytesToGrayBytes        BytesFunc = MustLookup(FormatXYZBytes, FormatGrayBytes).ConvertBytes
	ZYXBytesToGrayBytes        BytesFunc = MustLookup(FormatZYXBytes, FormatGrayBytes).ConvertBytes
	GrayBytesToZYXBytes        BytesFunc = MustLookup(FormatGrayBytes, FormatZYXBytes).ConvertBytes
	XYZABytesToXYZAPreBytes    BytesFunc = MustLookup(FormatXYZABytes, FormatXYZAPreBytes).ConvertBytes
	XYZAPreBytesToXYZABytes    BytesFunc = MustLookup(FormatXYZAPreBytes, FormatXYZABytes).ConvertBytes
	ZYXABytesToZYXAPreBytes    BytesFunc = MustLookup(FormatZYXABytes, FormatZYXAPreBytes).ConvertBytes
	ZYXAPreBytesToZYXABytes    BytesFunc = MustLookup(FormatZYXAPreBytes, FormatZYXABytes).ConvertBytes
	XYZABytesToZYXABytes       BytesFunc = MustLookup(FormatXYZABytes, FormatZYXABytes).ConvertBytes
	ZYXABytesToXYZABytes       BytesFunc = MustLookup(FormatZYXABytes, FormatXYZABytes).ConvertBytes
	XYZAPreBytesToZYXAPreBytes BytesFunc = MustLookup(FormatXYZAPreBytes, FormatZYXAPreBytes).ConvertBytes
	XYZBytesToXYZABytes        BytesFunc = MustLookup(FormatXYZBytes, FormatXYZABytes).ConvertBytes
	XYZABytesToXYZBytes        BytesFunc = MustLookup(FormatXYZABytes, FormatXYZBytes).ConvertBytes
	ZYXBytesToZYXABytes        BytesFunc = MustLookup(FormatZYXBytes, FormatZYXABytes).ConvertBytes
	XYZBytesToAXYZPreBytes     BytesFunc = MustLookup(FormatXYZBytes, FormatAXYZPreBytes).ConvertBytes
)

// Byte-packed to word-packed.
var (
	GrayBytesToAXYZInts       PackFunc = MustLookup(FormatGrayBytes, FormatAXYZInts).PackWords
	XYZBytesToAXYZInts        PackFunc = MustLookup(FormatXYZBytes, FormatAXYZInts).PackWords
	ZYXBytesToAXYZInts        PackFunc = MustLookup(FormatZYXBytes, FormatAXYZInts).PackWords
	AXYZBytesToAXYZInts       PackFunc = MustLookup(FormatAXYZBytes, FormatAXYZInts).PackWords
	AXYZPreBytesToAXYZInts    PackFunc = MustLookup(FormatAXYZPreBytes, FormatAXYZInts).PackWords
	AZYXBytesToAXYZInts       PackFunc = MustLookup(FormatAZYXBytes, FormatAXYZInts).PackWords
	AZYXPreBytesToAXYZInts    PackFunc = MustLookup(FormatAZYXPreBytes, FormatAXYZInts).PackWords
	XYZABytesToAXYZInts       PackFunc = MustLookup(FormatXYZABytes, FormatAXYZInts).PackWords
	XYZAPreBytesToAXYZInts    PackFunc = MustLookup(FormatXYZAPreBytes, FormatAXYZInts).PackWords
	ZYXABytesToAXYZInts       PackFunc = MustLookup(FormatZYXABytes, FormatAXYZInts).PackWords
	ZYXAPreBytesToAXYZInts    PackFunc = MustLookup(FormatZYXAPreBytes, FormatAXYZInts).PackWords
	AXYZBytesToXYZInts        PackFunc = MustLookup(FormatAXYZBytes, FormatXYZInts).PackWords
	AXYZBytesToZYXInts        PackFunc = MustLookup(FormatAXYZBytes, FormatZYXInts).PackWords
	AXYZBytesToAXYZPreInts    PackFunc = MustLookup(FormatAXYZBytes, FormatAXYZPreInts).PackWords
	AXYZBytesToAZYXInts       PackFunc = MustLookup(FormatAXYZBytes, FormatAZYXInts).PackWords
	AXYZBytesToAZYXPreInts    PackFunc = MustLookup(FormatAXYZBytes, FormatAZYXPreInts).PackWords
	AXYZPreBytesToAXYZPreInts PackFunc = MustLookup(FormatAXYZPreBytes, FormatAXYZPreInts).PackWords
	XYZBytesToXYZInts         PackFunc = MustLookup(FormatXYZBytes, FormatXYZInts).PackWords
)

// Word-packed to byte-packed.
var (
	AXYZIntsToGrayBytes       UnpackFunc = MustLookup(FormatAXYZInts, FormatGrayBytes).UnpackWords
	AXYZIntsToXYZBytes        UnpackFunc = MustLookup(FormatAXYZInts, FormatXYZBytes).UnpackWords
	AXYZIntsToZYXBytes        UnpackFunc = MustLookup(FormatAXYZInts, FormatZYXBytes).UnpackWords
	AXYZIntsToAXYZBytes       UnpackFunc = MustLookup(FormatAXYZInts, FormatAXYZBytes).UnpackWords
	AXYZIntsToAXYZPreBytes    UnpackFunc = MustLookup(FormatAXYZInts, FormatAXYZPreBytes).UnpackWords
	AXYZIntsToAZYXBytes       UnpackFunc = MustLookup(FormatAXYZInts, FormatAZYXBytes).UnpackWords
	AXYZIntsToAZYXPreBytes    UnpackFunc = MustLookup(FormatAXYZInts, FormatAZYXPreBytes).UnpackWords
	AXYZIntsToXYZABytes       UnpackFunc = MustLookup(FormatAXYZInts, FormatXYZABytes).UnpackWords
	AXYZIntsToXYZAPreBytes    UnpackFunc = MustLookup(FormatAXYZInts, FormatXYZAPreBytes).UnpackWords
	AXYZIntsToZYXABytes       UnpackFunc = MustLookup(FormatAXYZInts, FormatZYXABytes).UnpackWords
	AXYZIntsToZYXAPreBytes    UnpackFunc = MustLookup(FormatAXYZInts, FormatZYXAPreBytes).UnpackWords
	XYZIntsToAXYZBytes        UnpackFunc = MustLookup(FormatXYZInts, FormatAXYZBytes).UnpackWords
	ZYXIntsToAXYZBytes        UnpackFunc = MustLookup(FormatZYXInts, FormatAXYZBytes).UnpackWords
	AXYZPreIntsToAXYZBytes    UnpackFunc = MustLookup(FormatAXYZPreInts, FormatAXYZBytes).UnpackWords
	AZYXIntsToAXYZBytes       UnpackFunc = MustLookup(FormatAZYXInts, FormatAXYZBytes).UnpackWords
	AZYXPreIntsToAXYZBytes    UnpackFunc = MustLookup(FormatAZYXPreInts, FormatAXYZBytes).UnpackWords
	AXYZPreIntsToAXYZPreBytes UnpackFunc = MustLookup(FormatAXYZPreInts, FormatAXYZPreBytes).UnpackWords
	XYZIntsToXYZBytes         UnpackFunc = MustLookup(FormatXYZInts, FormatXYZBytes).UnpackWords
)

// Word-packed to word-packed.
var (
	XYZIntsToAXYZInts     WordsFunc = MustLookup(FormatXYZInts, FormatAXYZInts).ConvertWords
	AXYZIntsToXYZInts     WordsFunc = MustLookup(FormatAXYZInts, FormatXYZInts).ConvertWords
	ZYXIntsToAXYZInts     WordsFunc = MustLookup(FormatZYXInts, FormatAXYZInts).ConvertWords
	AXYZIntsToZYXInts     WordsFunc = MustLookup(FormatAXYZInts, FormatZYXInts).ConvertWords
	AXYZPreIntsToAXYZInts WordsFunc = MustLookup(FormatAXYZPreInts, FormatAXYZInts).ConvertWords
	AXYZIntsToAXYZPreInts WordsFunc = MustLookup(FormatAXYZInts, FormatAXYZPreInts).ConvertWords
	AZYXIntsToAXYZInts    WordsFunc = MustLookup(FormatAZYXInts, FormatAXYZInts).ConvertWords
	AXYZIntsToAZYXInts    WordsFunc = MustLookup(FormatAXYZInts, FormatAZYXInts).ConvertWords
	AZYXPreIntsToAXYZInts WordsFunc = MustLookup(FormatAZYXPreInts, FormatAXYZInts).ConvertWords
	AXYZIntsToAZYXPreInts WordsFunc = MustLookup(FormatAXYZInts, FormatAZYXPreInts).ConvertWords
	XYZIntsToZYXInts      WordsFunc = MustLookup(FormatXYZInts, FormatZYXInts).ConvertWords
	ZYXIntsToXYZInts      WordsFunc = MustLookup(FormatZYXInts, FormatXYZInts).ConvertWords
	AZYXIntsToAXYZPreInts WordsFunc = MustLookup(FormatAZYXInts, FormatAXYZPreInts).ConvertWords
)

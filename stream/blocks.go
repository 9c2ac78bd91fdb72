package stream

import "github.com/arloliu/base16384/group"

// blockCoder is the per-chunk transform the engine delegates to. The unchecked
// implementation carries no validation at all; the checked one validates every
// symbol and destination index.
type blockCoder interface {
	encodeBlock(dst, src []byte) (int, error)
	decodeBlock(dst, src []byte) (int, error)
	decodeTail(dst, src []byte, r int) error
}

type uncheckedBlocks struct{}

func (uncheckedBlocks) encodeBlock(dst, src []byte) (int, error) {
	return group.EncodeBlock(dst, src), nil
}

func (uncheckedBlocks) decodeBlock(dst, src []byte) (int, error) {
	return group.DecodeBlock(dst, src), nil
}

func (uncheckedBlocks) decodeTail(dst, src []byte, r int) error {
	group.DecodeTail(dst, src, r)
	return nil
}

type checkedBlocks struct{}

func (checkedBlocks) encodeBlock(dst, src []byte) (int, error) {
	return group.EncodeBlockSafe(dst, src)
}

func (checkedBlocks) decodeBlock(dst, src []byte) (int, error) {
	return group.DecodeBlockSafe(dst, src)
}

func (checkedBlocks) decodeTail(dst, src []byte, r int) error {
	return group.DecodeTailSafe(dst, src, r)
}

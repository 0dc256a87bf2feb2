// Package proto holds the wire shapes the renderable world consumes: the
// serialized mapblock payload pushed by the server. Transport and
// authentication live elsewhere; this package only turns bytes into
// immutable world.MapBlock payloads.
package proto

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"mini-mt/internal/world"
)

// Serialization versions. 28 compresses the node data with zlib, 29 with
// zstd (matching the upstream protocol cut-over).
const (
	VersionZlib = 28
	VersionZstd = 29
)

const (
	contentWidth = 2
	paramsWidth  = 2
	nodeDataLen  = world.NodeCount * (contentWidth + paramsWidth)
)

var zstdDecoder, _ = zstd.NewReader(nil,
	zstd.WithDecoderConcurrency(1),
	zstd.WithDecoderMaxMemory(8<<20),
)

// DecodeBlock parses a serialized mapblock payload:
//
//	u8  version (28 or 29)
//	u8  flags
//	u16 lit-from mask
//	u8  content width (must be 2)
//	u8  params width (must be 2)
//	... compressed node data: 4096 big-endian u16 param0,
//	    4096 bytes param1, 4096 bytes param2
//
// Malformed payloads are a data-integrity failure: the caller logs the
// error and drops the block, the pipeline keeps running.
func DecodeBlock(payload []byte) (*world.MapBlock, error) {
	if len(payload) < 6 {
		return nil, fmt.Errorf("block payload too short: %d bytes", len(payload))
	}

	version := payload[0]
	if payload[4] != contentWidth || payload[5] != paramsWidth {
		return nil, fmt.Errorf("unsupported node widths %d/%d", payload[4], payload[5])
	}
	compressed := payload[6:]

	var nodeData []byte
	var err error
	switch version {
	case VersionZlib:
		nodeData, err = inflateZlib(compressed)
	case VersionZstd:
		nodeData, err = zstdDecoder.DecodeAll(compressed, make([]byte, 0, nodeDataLen))
	default:
		return nil, fmt.Errorf("unsupported block serialization version %d", version)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress node data: %w", err)
	}
	if len(nodeData) != nodeDataLen {
		return nil, fmt.Errorf("node data is %d bytes, want %d", len(nodeData), nodeDataLen)
	}

	blk := &world.MapBlock{}
	for i := 0; i < world.NodeCount; i++ {
		blk.Param0[i] = binary.BigEndian.Uint16(nodeData[i*2:])
	}
	copy(blk.Param1[:], nodeData[world.NodeCount*2:])
	copy(blk.Param2[:], nodeData[world.NodeCount*3:])
	return blk, nil
}

// EncodeBlock is the inverse of DecodeBlock. The client itself never sends
// blocks; this exists for the built-in demo source and for tests.
func EncodeBlock(blk *world.MapBlock, version uint8) ([]byte, error) {
	nodeData := make([]byte, nodeDataLen)
	for i := 0; i < world.NodeCount; i++ {
		binary.BigEndian.PutUint16(nodeData[i*2:], blk.Param0[i])
	}
	copy(nodeData[world.NodeCount*2:], blk.Param1[:])
	copy(nodeData[world.NodeCount*3:], blk.Param2[:])

	var buf bytes.Buffer
	buf.Write([]byte{version, 0, 0, 0, contentWidth, paramsWidth})

	switch version {
	case VersionZlib:
		zw := zlib.NewWriter(&buf)
		if _, err := zw.Write(nodeData); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	case VersionZstd:
		zw, err := zstd.NewWriter(&buf, zstd.WithEncoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(nodeData); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported block serialization version %d", version)
	}
	return buf.Bytes(), nil
}

func inflateZlib(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	out := make([]byte, 0, nodeDataLen)
	buf := bytes.NewBuffer(out)
	if _, err := io.Copy(buf, zr); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

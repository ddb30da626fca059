// Package tttcodec compresses streams of Tic-Tac-Toe board states into a
// compact binary form and losslessly recovers them.
//
// It targets workloads generating many boards (self-play game traces,
// recorded match histories) where the naive representation — nine cells
// per board, one byte each — wastes space. The codec combines a
// board-specific bit-packer (15 bits per board, via internal/bitpack) with
// a Huffman code trained on the packed stream (internal/huffman), and
// frames both as a single self-contained unit (internal/frame).
//
// Basic usage:
//
//	buf := tttcodec.Encode(boards)
//	decoded, err := tttcodec.Decode(buf)
package tttcodec

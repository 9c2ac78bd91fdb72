// Package section implements the integrity layer of the base16384 wire format:
// the optional header, the tail marker and the optional checksum trailer.
//
// # Stream layout
//
//	+---------+-----------------+-----------------------+--------+-----------+
//	| [FE FF] | group * n (8 B) | [tail symbols, 2-8 B] | [= r]  | [trailer] |
//	+---------+-----------------+-----------------------+--------+-----------+
//
//   - Header: the UTF-16BE byte-order mark, present when the encoder was asked
//     to write a head. Decoders strip it whenever it is present.
//   - Tail marker: the code unit 0x3D00|r ('=' followed by the byte r) declaring
//     that the final group holds r (1..6) raw bytes. Absent when the input length
//     is a multiple of 7.
//   - Trailer: three alphabet symbols carrying the top 42 bits of the xxHash64
//     digest of the covered bytes (see format.Flag). Its presence is not recorded
//     in the stream; encoder and decoder must use the same flags.
//
// None of the metadata code units are in the alphabet image except the trailer
// symbols, so a decoder can locate the tail marker by looking at most
// MaxMetadataSize bytes back from the end of the stream.
package section

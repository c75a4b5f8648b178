// Package blockcodec converts text into integer blocks and back.
//
// A message is UTF-8 encoded, right-padded with zero bytes to a multiple of
// the block size, and split into consecutive blocks. Each block is read as a
// big-endian unsigned integer in [0, 256^k).
//
//	c, _ := blockcodec.New(4)
//	blocks := c.Encode("dog: 🐶")  // [1685022522 552640400 3053453312]
//	msg, _ := c.Decode(blocks)     // "dog: 🐶"
//
// Decoding strips trailing zero bytes from the final block, so a message
// whose UTF-8 bytes end in NUL does not round-trip.
package blockcodec

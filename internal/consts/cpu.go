package consts

import "golang.org/x/sys/cpu"

// IsLittleEndian allows words to be loaded straight out of byte buffers
// without going through encoding/binary. It is a constant so the compiler can
// drop the branch it guards.
const IsLittleEndian = !cpu.IsBigEndian

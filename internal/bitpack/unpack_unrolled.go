package bitpack

func unpack1(in, out []uint32) {
	w := in[0]
	out = out[:GroupSize]
	for i := range out {
		out[i] = (w >> i) & 1
	}
}

func unpack2(in, out []uint32) {
	_ = in[1]
	out = out[:GroupSize]
	for j := 0; j < 2; j++ {
		w := in[j]
		o := out[j*16 : j*16+16 : j*16+16]
		o[0] = w & 0x3
		o[1] = (w >> 2) & 0x3
		o[2] = (w >> 4) & 0x3
		o[3] = (w >> 6) & 0x3
		o[4] = (w >> 8) & 0x3
		o[5] = (w >> 10) & 0x3
		o[6] = (w >> 12) & 0x3
		o[7] = (w >> 14) & 0x3
		o[8] = (w >> 16) & 0x3
		o[9] = (w >> 18) & 0x3
		o[10] = (w >> 20) & 0x3
		o[11] = (w >> 22) & 0x3
		o[12] = (w >> 24) & 0x3
		o[13] = (w >> 26) & 0x3
		o[14] = (w >> 28) & 0x3
		o[15] = w >> 30
	}
}

func unpack4(in, out []uint32) {
	_ = in[3]
	out = out[:GroupSize]
	for j := 0; j < 4; j++ {
		w := in[j]
		o := out[j*8 : j*8+8 : j*8+8]
		o[0] = w & 0xf
		o[1] = (w >> 4) & 0xf
		o[2] = (w >> 8) & 0xf
		o[3] = (w >> 12) & 0xf
		o[4] = (w >> 16) & 0xf
		o[5] = (w >> 20) & 0xf
		o[6] = (w >> 24) & 0xf
		o[7] = w >> 28
	}
}

func unpack8(in, out []uint32) {
	_ = in[7]
	out = out[:GroupSize]
	for j := 0; j < 8; j++ {
		w := in[j]
		o := out[j*4 : j*4+4 : j*4+4]
		o[0] = w & 0xff
		o[1] = (w >> 8) & 0xff
		o[2] = (w >> 16) & 0xff
		o[3] = w >> 24
	}
}

func unpack16(in, out []uint32) {
	_ = in[15]
	out = out[:GroupSize]
	for j := 0; j < 16; j++ {
		w := in[j]
		out[2*j] = w & 0xffff
		out[2*j+1] = w >> 16
	}
}

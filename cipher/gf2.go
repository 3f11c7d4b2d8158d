package cipher

// DeriveInverse computes the basis images of the inverse of a linear map
// given by its forward basis images (images[i] = L(e_i)), by GF(2)
// Gauss-Jordan elimination on the 32x32 bit-matrix whose columns are
// images[0..31] augmented with the identity matrix. Panics if the map is
// not invertible (the forward images do not span GF(2)^32), which would
// indicate a malformed cipher description.
func DeriveInverse(images [32]uint32) [32]uint32 {
	// rows[i] is row i of [images | I] packed as (32-bit image-columns,
	// 32-bit identity-columns) in a single uint64: bits 0..31 are the
	// image side, bits 32..63 are the identity side.
	var rows [32]uint64
	for i := 0; i < 32; i++ {
		var rowImage uint32
		for j := 0; j < 32; j++ {
			if (images[j]>>uint(i))&1 != 0 {
				rowImage |= 1 << uint(j)
			}
		}
		rows[i] = uint64(rowImage) | (uint64(1)<<uint(i))<<32
	}

	for col := 0; col < 32; col++ {
		pivot := -1
		for r := col; r < 32; r++ {
			if (rows[r]>>uint(col))&1 != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			panic("cipher: linear map is not invertible over GF(2)")
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]
		for r := 0; r < 32; r++ {
			if r == col {
				continue
			}
			if (rows[r]>>uint(col))&1 != 0 {
				rows[r] ^= rows[col]
			}
		}
	}

	// rows is now [I | inverse-rows]; the inverse map's row i, read back
	// out as basis images, requires transposing row-space back to
	// column-space (basis images are columns of the inverse matrix).
	var invRows [32]uint32
	for i := 0; i < 32; i++ {
		invRows[i] = uint32(rows[i] >> 32)
	}
	var out [32]uint32
	for j := 0; j < 32; j++ {
		var col uint32
		for i := 0; i < 32; i++ {
			if (invRows[i]>>uint(j))&1 != 0 {
				col |= 1 << uint(i)
			}
		}
		out[j] = col
	}
	return out
}

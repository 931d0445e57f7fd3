package blend

// Src-over compositing of a foreground pixel onto a background pixel.
//
// Normalized form, channels in [0, 1]:
//
//	alpha_out = bg.a + fg.a - bg.a*fg.a
//	out.rgb   = (fg.rgb*fg.a + bg.rgb*bg.a*(1 - fg.a)) / alpha_out
//	out.a     = alpha_out
//
// When alpha_out is zero both inputs are fully transparent and the result
// color is undefined: every kernel leaves the destination unchanged.

// maxChannel is the float scale of an 8-bit channel.
const maxChannel = float32(255)

// SourceOverFloat composites fg over bg in normalized float32 arithmetic and
// converts back to bytes by truncation. ok is false when the composite alpha
// is zero, in which case out equals bg.
func SourceOverFloat(bg, fg [4]uint8) (out [4]uint8, ok bool) {
	bgR := float32(bg[0]) / maxChannel
	bgG := float32(bg[1]) / maxChannel
	bgB := float32(bg[2]) / maxChannel
	bgA := float32(bg[3]) / maxChannel

	fgR := float32(fg[0]) / maxChannel
	fgG := float32(fg[1]) / maxChannel
	fgB := float32(fg[2]) / maxChannel
	fgA := float32(fg[3]) / maxChannel

	alphaOut := bgA + fgA - bgA*fgA
	if alphaOut == 0 {
		return bg, false
	}

	invFgA := 1 - fgA
	outR := (fgR*fgA + bgR*bgA*invFgA) / alphaOut
	outG := (fgG*fgA + bgG*bgA*invFgA) / alphaOut
	outB := (fgB*fgA + bgB*bgA*invFgA) / alphaOut

	return [4]uint8{
		truncChannel(outR),
		truncChannel(outG),
		truncChannel(outB),
		truncChannel(alphaOut),
	}, true
}

// truncChannel scales v back to [0, 255] and truncates toward zero.
func truncChannel(v float32) uint8 {
	s := v * maxChannel
	if s >= 255 {
		return 255
	}
	if s <= 0 {
		return 0
	}
	return uint8(s)
}

// SourceOverFixed composites fg over bg in premultiplied integer arithmetic,
// unmultiplying through t. ok is false when the composite alpha is zero, in
// which case out equals bg.
//
// A fully transparent foreground leaves bg as is and a fully opaque one
// replaces it; neither needs the table.
func SourceOverFixed(bg, fg [4]uint8, t *DivTable) (out [4]uint8, ok bool) {
	sa := uint32(fg[3])
	switch sa {
	case 0:
		if bg[3] == 0 {
			return bg, false
		}
		return bg, true
	case 255:
		return fg, true
	}
	da := uint32(bg[3])
	invSa := inv255(sa)

	// Alpha first: it is both the output alpha and the table column.
	alphaFinal := da + sa - mulDiv255(da, sa)
	if alphaFinal > 255 {
		alphaFinal = 255
	}
	if alphaFinal == 0 {
		return bg, false
	}
	af := uint8(alphaFinal)

	for c := 0; c < 3; c++ {
		srcP := mulDiv255(uint32(fg[c]), sa)
		dstP := mulDiv255(uint32(bg[c]), da)
		p := srcP + mulDiv255(dstP, invSa)
		out[c] = t.Unmultiply(clamp255(p), af)
	}
	out[3] = af
	return out, true
}

// SourceOverOpaque composites fg over a background whose alpha is assumed to
// be 255. The background alpha is not read. The result alpha is always 255.
//
//	out.rgb = (fg.rgb*fg.a + bg.rgb*(255 - fg.a)) >> 8
func SourceOverOpaque(bg, fg [4]uint8) [4]uint8 {
	sa := uint32(fg[3])
	invSa := inv255(sa)
	return [4]uint8{
		uint8((uint32(fg[0])*sa + uint32(bg[0])*invSa) >> 8), //nolint:gosec // max 65025>>8
		uint8((uint32(fg[1])*sa + uint32(bg[1])*invSa) >> 8), //nolint:gosec // max 65025>>8
		uint8((uint32(fg[2])*sa + uint32(bg[2])*invSa) >> 8), //nolint:gosec // max 65025>>8
		255,
	}
}

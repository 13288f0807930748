package main

// PortCenter is where p sits on b right now: just outside the left edge for
// inputs, the right edge for outputs, vertically centered. Every port on the
// same side gets the same center, so they overlap.
func PortCenter(b *Block, p *Port) Point {
	offset := b.Width*b.ScaleX/2 + p.Size/2
	if p.Side == SideInput {
		return Point{X: b.Center.X - offset, Y: b.Center.Y}
	}
	return Point{X: b.Center.X + offset, Y: b.Center.Y}
}

// Reattach recomputes the center of every port owned by b.
func Reattach(b *Block) {
	for _, p := range b.Ports {
		p.Center = PortCenter(b, p)
	}
}

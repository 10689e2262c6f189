package stream

import (
	"log"
	"sync"
)

// Controller that manages animations, cross-fading when a new one is set.
type Controller struct {
	mu                  sync.Mutex
	animation           Animation
	nextAnimation       Animation
	frameRate           float64
	transition          float64
	transitionTimeSecs  float64
	transitionIncrement float64

	// shown is the blend amount of the last frame rendered.
	shown float64
}

// blend is a fixed mix of two animations.
type blend struct {
	from   Animation
	to     Animation
	amount float64
}

func (b *blend) CalculateFrame(signal float64) *Frame {
	return b.from.CalculateFrame(signal).InterpolateFrame(b.to.CalculateFrame(signal), b.amount)
}

// NewController creates an instance of a Controller.
func NewController(animation Animation, frameRate float64, transitionTimeSecs float64) *Controller {
	c := new(Controller)
	c.animation = animation
	c.nextAnimation = nil

	c.frameRate = frameRate
	c.transition = 0.0
	c.transitionTimeSecs = transitionTimeSecs
	c.transitionIncrement = 1.0
	if frameRate > 0 && transitionTimeSecs > 0 {
		c.transitionIncrement = 1.0 / (c.frameRate * c.transitionTimeSecs)
	}

	return c
}

// SetAnimation fades from whatever is showing now to a.
func (c *Controller) SetAnimation(a Animation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	log.Printf("Next animation: %T", a)
	if c.nextAnimation != nil {
		// Fade onwards from the blend that is showing.
		c.animation = &blend{from: c.animation, to: c.nextAnimation, amount: c.shown}
	}
	c.nextAnimation = a
	c.transition = 0.0
	c.shown = 0.0
}

// Transitioning reports whether a cross-fade is in progress.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextAnimation != nil
}

// CalculateFrame renders the current animation, blended with the next one
// during a transition.
func (c *Controller) CalculateFrame(signal float64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	var f *Frame
	if c.nextAnimation != nil {
		f1 := c.animation.CalculateFrame(signal)
		f2 := c.nextAnimation.CalculateFrame(signal)
		f = f1.InterpolateFrame(f2, c.transition)
		c.shown = c.transition
		c.transition += c.transitionIncrement

		if c.transition >= 1.0 {
			c.animation = c.nextAnimation
			c.nextAnimation = nil
			c.transition = 0.0
		}
	} else {
		f = c.animation.CalculateFrame(signal)
	}

	return f
}

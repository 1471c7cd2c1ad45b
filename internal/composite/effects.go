package composite

import (
	"fmt"
	"time"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
)

// RouteEffectUpload relays a target's force-feedback upload, update, or
// erase request to the first attached source advertising
// ForceFeedbackRumble, then forwards that source's reply back on
// req.Reply. Runs off the actor goroutine (only the source lookup touches
// shared state) so a slow or unresponsive source can never stall the
// composite's event pipeline.
func (c *CompositeDevice) RouteEffectUpload(req target.EffectUploadRequest) {
	var dst chan<- source.Command

	c.query(func(cd *CompositeDevice) {
		for _, s := range cd.sources {
			caps, err := s.Capabilities()
			if err != nil {
				continue
			}

			for _, cp := range caps {
				if cp == capability.ForceFeedbackRumble {
					dst = s.Commands()

					return
				}
			}
		}
	})

	if dst == nil {
		req.Reply <- source.EffectReply{Err: fmt.Errorf("composite.RouteEffectUpload: no force-feedback source attached")}

		return
	}

	reply := make(chan source.EffectReply, 1)

	cmd := source.Command{Kind: source.CommandUploadEffect, EffectData: req.Data, ReplyEffect: reply}

	switch req.Kind {
	case target.EffectUpdate:
		cmd.Kind = source.CommandUpdateEffect
		cmd.EffectID = req.EffectID
	case target.EffectErase:
		cmd.Kind = source.CommandEraseEffect
		cmd.EffectID = req.EffectID
	}

	select {
	case dst <- cmd:
	default:
		req.Reply <- source.EffectReply{Err: fmt.Errorf("composite.RouteEffectUpload: source command queue full")}

		return
	}

	select {
	case r := <-reply:
		req.Reply <- r
	case <-time.After(replyTimeout):
		req.Reply <- source.EffectReply{Err: ErrTimeout}
	}
}

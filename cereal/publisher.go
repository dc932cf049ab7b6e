package cereal

import (
	"time"

	capnp "capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"

	"pfeifer.dev/trackd/cereal/msg"
	"pfeifer.dev/trackd/settings"
)

type MessageCreator[T any] func(msg.Event) (T, error)

type Publisher[T any] struct {
	Pub     gomsgq.MsgqPublisher
	creator MessageCreator[T]
}

func (p *Publisher[T]) Send(message *capnp.Message) error {
	b, err := message.Marshal()
	if err != nil {
		return err
	}
	p.Pub.Send(b)
	return nil
}

// NewMessage allocates an event message with the payload created by the
// publisher's creator. The payload setter methods fill it in before Send.
func (p *Publisher[T]) NewMessage(valid bool) (message *capnp.Message, obj T) {
	arena := capnp.SingleSegment(nil)

	message, seg, err := capnp.NewMessage(arena)
	if err != nil {
		panic(err)
	}

	event, err := msg.NewRootEvent(seg)
	if err != nil {
		panic(err)
	}

	event.SetLogMonoTime(GetTime())
	event.SetValid(valid)

	obj, err = p.creator(event)
	if err != nil {
		panic(err)
	}

	return message, obj
}

func NewPublisher[T any](name string, creator MessageCreator[T]) (publisher Publisher[T]) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init(name, int64(settings.GetSegmentSize(name)))
	if err != nil {
		panic(err)
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	publisher.Pub = pub
	publisher.creator = creator
	return publisher
}

// GetTime is the monotonic timestamp stamped onto outgoing events.
func GetTime() uint64 {
	return uint64(time.Now().UnixNano())
}

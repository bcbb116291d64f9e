package types

import "github.com/bytearena/ecs"

// PhysicalBodyDescriptor is set as UserData on Box2D bodies to identify both
// sides of a contact from the Box2D callbacks
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   ecs.EntityID
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Wall:
		return "Wall"
	case PhysicalBodyDescriptorType.Paddle:
		return "Paddle"
	case PhysicalBodyDescriptorType.Puck:
		return "Puck"
	}

	return "UnkownType"
}

var PhysicalBodyDescriptorType = struct {
	Wall   _physicaltype
	Paddle _physicaltype
	Puck   _physicaltype
}{
	Wall:   _physicaltype("w"),
	Paddle: _physicaltype("p"),
	Puck:   _physicaltype("k"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id ecs.EntityID) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}

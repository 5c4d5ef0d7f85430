package rgba

import "gopkg.in/mgo.v2/bson"

// bsonColor mirrors Color without its BSON hooks.
type bsonColor struct {
	R uint8 `bson:"r"`
	G uint8 `bson:"g"`
	B uint8 `bson:"b"`
	A uint8 `bson:"a"`
}

// GetBSON implements bson.Getter. Keys are always written as r, g, b, a.
func (c Color) GetBSON() (interface{}, error) {
	return bson.D{
		{Name: "r", Value: int32(c.R)},
		{Name: "g", Value: int32(c.G)},
		{Name: "b", Value: int32(c.B)},
		{Name: "a", Value: int32(c.A)},
	}, nil
}

// SetBSON implements bson.Setter.
func (c *Color) SetBSON(raw bson.Raw) error {
	var doc bsonColor
	if err := raw.Unmarshal(&doc); err != nil {
		return err
	}

	*c = Color(doc)
	return nil
}

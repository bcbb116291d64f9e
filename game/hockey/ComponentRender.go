package hockey

type Render struct {
	type_ string
	color string
}

func (game HockeyGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}

func (r Render) GetColor() string {
	return r.color
}

package main

import (
	"nearnow/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserLocationModel{},
		model.SwipeModel{},
		model.MatchModel{},
		model.MessageModel{},
		model.PresenceStateModel{},
		model.UserDeviceModel{},
		model.BlockModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

package configs

import (
	"github.com/AugustoPaz13/RiVelez-SistemaDeGestion-sub000/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Table{},
		&entity.Order{}, &entity.OrderItem{},
	)
}

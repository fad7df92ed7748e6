package database

import (
	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"
)

var DB *gorm.DB

// Init 初始化全局数据库连接 各领域dal共享同一个连接池
func Init() {
	var err error
	dsn := config.ConfigInfo.Mysql.Username + ":" + config.ConfigInfo.Mysql.Password +
		"@tcp(" + config.ConfigInfo.Mysql.Addr + ")/" + config.ConfigInfo.Mysql.Database +
		"?charset=utf8mb4&parseTime=True&loc=Local"
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			// 把底层的重复键错误翻译成gorm.ErrDuplicatedKey 切换边依赖这个映射
			TranslateError: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = DB.Use(gormopentracing.New()); err != nil {
		panic(err)
	}

	if err = migrateTables(); err != nil {
		panic(err)
	}
}

func migrateTables() error {
	return DB.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Comment{},
		&model.Tweet{},
		&model.Playlist{},
		&model.PlaylistVideo{},
		&model.Like{},
		&model.Subscription{},
		&model.WatchHistory{},
	)
}

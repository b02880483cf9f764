package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gemilang_backend/internals/configs"
	GalleryModel "gemilang_backend/internals/features/gallery/model"
	PostModel "gemilang_backend/internals/features/blog/posts/model"
	TopicModel "gemilang_backend/internals/features/blog/topics/model"
	SettingModel "gemilang_backend/internals/features/settings/model"
	TestimonialModel "gemilang_backend/internals/features/testimonials/model"
	UserModel "gemilang_backend/internals/features/users/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=gemilang&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate menjalankan AutoMigrate untuk semua model CMS.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&UserModel.UserModel{},
		&TopicModel.TopicModel{},
		&PostModel.PostModel{},
		&PostModel.PostContentModel{},
		&TestimonialModel.TestimonialModel{},
		&GalleryModel.GalleryImageModel{},
		&SettingModel.SettingModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}

// SeedAdmin membuat akun admin dari ENV kalau belum ada.
func SeedAdmin(db *gorm.DB) {
	email := configs.AdminEmail
	password := configs.AdminPassword
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD belum diset, skip seed admin")
		return
	}

	var count int64
	if err := db.Model(&UserModel.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		log.Printf("seed admin check err: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("seed admin hash err: %v", err)
		return
	}

	admin := UserModel.UserModel{
		UserName:     "Admin",
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("seed admin create err: %v", err)
		return
	}
	log.Printf("✅ Admin %s berhasil dibuat.", email)
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

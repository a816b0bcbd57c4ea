package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"easytrack_backend/internal/app/di"
	"easytrack_backend/internal/app/router"
	authadapters "easytrack_backend/internal/feature/auth/adapters"
	authhandler "easytrack_backend/internal/feature/auth/transport/handler"
	authusecase "easytrack_backend/internal/feature/auth/usecase"
	markethandler "easytrack_backend/internal/feature/market/transport/handler"
	marketusecase "easytrack_backend/internal/feature/market/usecase"
	watchlistadapters "easytrack_backend/internal/feature/watchlist/adapters"
	watchlisthandler "easytrack_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "easytrack_backend/internal/feature/watchlist/usecase"
	jwtmw "easytrack_backend/internal/platform/jwt"
	"easytrack_backend/internal/platform/mongodb"
	infraredis "easytrack_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// 必須設定のチェック（欠落はプロセス起動失敗）
	jwtSecret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	mongoCfg, err := mongodb.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	// MongoDB接続（コンポジションルートが所有し、終了時に切断する）
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongodb.Connect(ctx, mongoCfg)
	cancel()
	if err != nil {
		log.Fatalf("failed to connect MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Println("[ERROR] Failed to disconnect MongoDB client:", err)
		}
	}()
	db := client.Database(mongoCfg.Database)

	// Redis（任意。なければキャッシュなしで動作）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserMongo(db)
	watchlistRepo := watchlistadapters.NewWatchlistMongo(db)
	marketRepo := di.NewMarket(rdb)

	// インデックス作成（デプロイ時のみ）
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("failed to ensure indexes: %v", err)
		}
		cancel()
	}

	// Usecase
	tokenGen := jwtmw.NewGenerator(jwtSecret, time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchlistRepo)
	marketUC := marketusecase.NewMarketUsecase(marketRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)
	marketH := markethandler.NewMarketHandler(marketUC)

	// ルータ生成
	r := router.NewRouter(authH, marketH, watchlistH)

	// CORS追加
	r.Use(cors.Default())

	// グレースフルシャットダウン（deferのMongoDB切断まで到達させる）
	srv := &http.Server{Addr: ":8080", Handler: r}
	stop, stopCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopCancel()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-stop.Done()
	log.Println("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("[ERROR] Server shutdown:", err)
	}
}

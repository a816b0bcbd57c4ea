// Package adapters はwatchlistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"easytrack_backend/internal/feature/watchlist/usecase"
)

// userCollection はユーザードキュメントを保持するコレクション名です。
// ウォッチリストはユーザードキュメントのstocks配列として保持されます。
const userCollection = "user"

// watchlistMongo はWatchlistRepositoryインターフェースのMongoDB実装です。
type watchlistMongo struct {
	col *mongo.Collection
}

// watchlistMongoがWatchlistRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.WatchlistRepository = (*watchlistMongo)(nil)

// NewWatchlistMongo は指定されたデータベースハンドルでwatchlistMongoの
// 新しいインスタンスを生成します。
func NewWatchlistMongo(db *mongo.Database) *watchlistMongo {
	return &watchlistMongo{col: db.Collection(userCollection)}
}

// AddSymbol は$addToSetでユーザーのstocks配列に銘柄を追加します。
// 更新は単一ドキュメントに対してアトミックで、クライアント側のロックは不要です。
// MatchedCountとModifiedCountを見ることで「ユーザー不在」と
// 「既に存在（変更なし）」を区別します。
func (r *watchlistMongo) AddSymbol(ctx context.Context, userID, symbol string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return false, usecase.ErrUserNotFound
	}

	res, err := r.col.UpdateByID(ctx, oid, bson.M{
		"$addToSet": bson.M{"stocks": symbol},
	})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, usecase.ErrUserNotFound
	}
	// ModifiedCount==0 は銘柄が既に集合に存在していた場合（冪等な成功）
	return res.ModifiedCount > 0, nil
}

// ListSymbols はユーザーのstocks配列を取得します。
// 配列が未設定のユーザーには空のスライスを返します。
func (r *watchlistMongo) ListSymbols(ctx context.Context, userID string) ([]string, error) {
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, usecase.ErrUserNotFound
	}

	var doc struct {
		Stocks []string `bson:"stocks"`
	}
	err = r.col.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"stocks": 1}),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}

	if doc.Stocks == nil {
		return []string{}, nil
	}
	return doc.Stocks, nil
}

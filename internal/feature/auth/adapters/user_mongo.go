// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"easytrack_backend/internal/feature/auth/domain/entity"
	"easytrack_backend/internal/feature/auth/usecase"
)

// userCollection はユーザードキュメントを保持するコレクション名です。
const userCollection = "user"

// userMongo はUserRepositoryインターフェースのMongoDB実装です。
type userMongo struct {
	col *mongo.Collection
}

// userMongoがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMongo)(nil)

// NewUserMongo は指定されたデータベースハンドルでuserMongoの新しい
// インスタンスを生成します。依存性注入用のコンストラクタです。
func NewUserMongo(db *mongo.Database) *userMongo {
	return &userMongo{col: db.Collection(userCollection)}
}

// EnsureIndexes はemailのユニークインデックスを作成します。
// 重複サインアップの最終防衛線で、プロセス起動時に一度呼び出します。
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create はユーザーをデータベースに追加し、採番されたIDのhex表現を返します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMongo) Create(ctx context.Context, u *entity.User) (string, error) {
	// 既存メールの事前チェック。ユニークインデックスが張られていない環境でも
	// 409を返せるよう、挿入時の重複キー検出と二段構えにする。
	err := r.col.FindOne(ctx, bson.M{"email": u.Email}).Err()
	if err == nil {
		return "", usecase.ErrEmailAlreadyExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	u.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", usecase.ErrEmailAlreadyExists
		}
		return "", err
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return id.Hex(), nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID はIDでユーザーを取得します。
// IDが不正、またはユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, usecase.ErrUserNotFound
	}
	var u entity.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

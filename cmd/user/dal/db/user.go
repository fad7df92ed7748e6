package db

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsersByIds 批量查询用户 视图拼装时用于替换owner外键
func GetUsersByIds(ctx context.Context, userIds []int64) (map[int64]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return map[int64]*model.User{}, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	userMap := make(map[int64]*model.User, len(users))
	for _, u := range users {
		userMap[u.UserId] = u
	}
	return userMap, nil
}

// GetUserByUserName handle匹配不区分大小写
func GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(user_name) = ?", strings.ToLower(userName)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed,err:%v", err)
	}
	return count > 0, nil
}

func UpdateUserInfo(ctx context.Context, userId int64, fullName, email string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Updates(map[string]interface{}{"full_name": fullName, "email": email}).Error
}

func UpdateUserAvatar(ctx context.Context, userId int64, avatarUrl string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("avatar_url", avatarUrl).Error
}

func UpdateUserCover(ctx context.Context, userId int64, coverUrl string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("cover_url", coverUrl).Error
}

func UpdateUserPassword(ctx context.Context, userId int64, hashedPassword string) error {
	return DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).
		Update("password", hashedPassword).Error
}

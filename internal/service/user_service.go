package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"doro/backend/internal/dto"
	"doro/backend/internal/model"
	"doro/backend/internal/repository"
)

// UserService 유저 업무 인터페이스
type UserService interface {
	Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error)
	// UpdateProfile 部分更新：req 中为 nil 的字段保持原值
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error)
	Overview(ctx context.Context, userID uint) (*dto.OverviewResponse, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	resp := toProfileResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	// username / role / date_joined 创建后只读，不接受修改
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Birth != nil {
		birth, err := time.Parse("2006-01-02", *req.Birth)
		if err == nil {
			user.Birth = &birth
		}
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Interests != nil {
		user.Interests = req.Interests
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.UpdateProfileResponse{
		Message: "정보가 수정되었습니다.",
		User:    toProfileResponse(user),
	}, nil
}

// Overview 학습 통계：目前返回占位统计值，仅 username 反映真实数据
func (s *userService) Overview(ctx context.Context, userID uint) (*dto.OverviewResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &dto.OverviewResponse{
		Username:         user.Username,
		CompletedCourses: 5,
		InProgress:       2,
		AverageScore:     95.5,
	}, nil
}

// toProfileResponse 将用户实体映射为 프로필 응답
func toProfileResponse(user *model.User) dto.ProfileResponse {
	var birth *string
	if user.Birth != nil {
		s := user.Birth.Format("2006-01-02")
		birth = &s
	}
	return dto.ProfileResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Birth:      birth,
		Phone:      user.Phone,
		DateJoined: user.DateJoined,
		Role:       user.Role,
		Interests:  user.Interests,
	}
}


package repository_test

import (
	"context"
	"errors"

	"taskpad/internal/db"
	"taskpad/internal/repository"
	"taskpad/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TaskListRepository", func() {
	var (
		repo        *repository.TaskListRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewTaskListRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate both tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Task{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "alice", "hash-of-pw1")
		})

		When("insert succeeds", func() {
			It("should persist the user record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.PasswordHash).To(Equal("hash-of-pw1"))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, record := fakeStorage.InsertArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the username is already present", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetUserByUsername(ctx, "ghost")
		})

		When("the user is absent", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("username"))
				Expect(value).To(Equal("ghost"))
			})
		})
	})

	Describe("CreateTask", func() {
		var (
			task repository.Task
			err  error
		)

		JustBeforeEach(func() {
			task, err = repo.CreateTask(ctx, 42, "Buy milk")
		})

		It("should set owner, content and creation time", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(task.UserID).To(Equal(uint(42)))
			Expect(task.Content).To(Equal("Buy milk"))
			Expect(task.Created).NotTo(BeZero())

			Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			_, record := fakeStorage.InsertArgsForCall(0)
			Expect(record).To(BeAssignableToTypeOf(&repository.Task{}))
		})
	})

	Describe("ListTasks", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.ListTasks(ctx, 42)
		})

		It("should filter by owner and order by creation time", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.ListByCallCount()).To(Equal(1))
			_, column, value, orderBy, _ := fakeStorage.ListByArgsForCall(0)
			Expect(column).To(Equal("user_id"))
			Expect(value).To(Equal(uint(42)))
			Expect(orderBy).To(Equal("created ASC"))
		})
	})

	Describe("GetTask", func() {
		var (
			task repository.Task
			err  error
		)

		JustBeforeEach(func() {
			task, err = repo.GetTask(ctx, 42, 3)
		})

		When("the task belongs to the user", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Task) = repository.Task{ID: 3, Content: "Buy milk", UserID: 42}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Content).To(Equal("Buy milk"))
			})
		})

		When("the task belongs to another user", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Task) = repository.Task{ID: 3, Content: "Buy milk", UserID: 7}
					return nil
				}
			})

			It("should report it as not found", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
			})
		})

		When("the id does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
			})
		})
	})

	Describe("UpdateTaskContent", func() {
		var (
			task repository.Task
			err  error
		)

		JustBeforeEach(func() {
			task, err = repo.UpdateTaskContent(ctx, 42, 3, "Buy bread")
		})

		When("the task belongs to the user", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Task) = repository.Task{ID: 3, Content: "Buy milk", UserID: 42}
					return nil
				}
			})

			It("should save the new content in place", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Content).To(Equal("Buy bread"))

				Expect(fakeStorage.SaveCallCount()).To(Equal(1))
				_, record := fakeStorage.SaveArgsForCall(0)
				saved, ok := record.(*repository.Task)
				Expect(ok).To(BeTrue())
				Expect(saved.ID).To(Equal(uint(3)))
				Expect(saved.Content).To(Equal("Buy bread"))
			})
		})

		When("the id does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return task not found error without saving", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
				Expect(fakeStorage.SaveCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DeleteTask", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteTask(ctx, 42, 3)
		})

		When("the task belongs to the user", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Task) = repository.Task{ID: 3, UserID: 42}
					return nil
				}
				fakeStorage.DeleteByReturns(1, nil)
			})

			It("should delete the row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.DeleteByCallCount()).To(Equal(1))
				_, model, column, value := fakeStorage.DeleteByArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Task{}))
				Expect(column).To(Equal("id"))
				Expect(value).To(Equal(uint(3)))
			})
		})

		When("the id does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return task not found error without deleting", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
				Expect(fakeStorage.DeleteByCallCount()).To(Equal(0))
			})
		})

		When("the row vanishes between lookup and delete", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					*entity.(*repository.Task) = repository.Task{ID: 3, UserID: 42}
					return nil
				}
				fakeStorage.DeleteByReturns(0, nil)
			})

			It("should return task not found error", func() {
				Expect(err).To(MatchError(repository.ErrTaskNotFound))
			})
		})
	})
})

package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SIMAK API",
        "description": "Read-only academic records API: students, KRS, KHS, offered courses, AKM and reference data.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Authentication"
        },
        {
            "name": "Students"
        },
        {
            "name": "Enrollments",
            "description": "KRS and KHS per student"
        },
        {
            "name": "Courses"
        },
        {
            "name": "AKM",
            "description": "Per-term and cumulative GPA"
        },
        {
            "name": "Master",
            "description": "Reference data"
        },
        {
            "name": "Health"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "A dependency is unavailable"
                    }
                }
            }
        },
        "/api/token/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Issue an API token",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token issued",
                        "schema": {
                            "$ref": "#/definitions/TokenLoginResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid Token credentials"
                    },
                    "422": {
                        "description": "Validation failed"
                    },
                    "429": {
                        "description": "Too many attempts"
                    }
                }
            }
        },
        "/api/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Issue an API token (alias)",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Token issued"
                    },
                    "429": {
                        "description": "Too many attempts"
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Verify student credentials",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Login successful"
                    },
                    "401": {
                        "description": "Invalid credentials"
                    },
                    "422": {
                        "description": "Validation failed"
                    }
                }
            }
        },
        "/api/logout": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Revoke the current token",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Logged out successfully"
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                }
            }
        },
        "/api/profile": {
            "get": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Describe the current API client",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": [
                    "Students"
                ],
                "summary": "List students",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "student_id",
                        "in": "query",
                        "type": "string",
                        "description": "Id or comma separated ids"
                    },
                    {
                        "name": "nim",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "register_number",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "entry_year",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "detail",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "server_paging",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "422": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Student not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                },
                "x-item": "Student"
            }
        },
        "/api/student-krs": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "List students with course enrollments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "student_id",
                        "in": "query",
                        "type": "string",
                        "description": "Id or comma separated ids"
                    },
                    {
                        "name": "term_year_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "server_paging",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "422": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "No matching students",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                },
                "x-item": "StudentKrs"
            }
        },
        "/api/student-khs": {
            "get": {
                "tags": [
                    "Enrollments"
                ],
                "summary": "List students with graded enrollments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "student_id",
                        "in": "query",
                        "type": "string",
                        "description": "Id or comma separated ids"
                    },
                    {
                        "name": "term_year_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "server_paging",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "422": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "No matching students",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                },
                "x-item": "StudentKhs"
            }
        },
        "/api/offered-course": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List offered courses",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "term_year_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "course_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "course_code",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "server_paging",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "422": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                },
                "x-item": "OfferedCourse"
            }
        },
        "/api/akm": {
            "get": {
                "tags": [
                    "AKM"
                ],
                "summary": "List per-term academic performance",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "student_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "nim",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "entry_year",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "server_paging",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "name": "per_page",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "422": {
                        "description": "Invalid filter",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "No matching students",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                },
                "x-item": "StudentAkm"
            }
        },
        "/api/akm/export": {
            "get": {
                "tags": [
                    "AKM"
                ],
                "summary": "Download per-term academic performance",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "student_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "nim",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "department_id",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "entry_year",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "No students found"
                    },
                    "422": {
                        "description": "Invalid format"
                    }
                }
            }
        },
        "/api/master/departments": {
            "get": {
                "tags": [
                    "Master"
                ],
                "summary": "List departments",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                },
                "x-item": "Department"
            }
        },
        "/api/master/program-classes": {
            "get": {
                "tags": [
                    "Master"
                ],
                "summary": "List program classes",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                },
                "x-item": "ClassProgram"
            }
        },
        "/api/master/religions": {
            "get": {
                "tags": [
                    "Master"
                ],
                "summary": "List religions",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                },
                "x-item": "Religion"
            }
        },
        "/api/master/marital-statuses": {
            "get": {
                "tags": [
                    "Master"
                ],
                "summary": "List marital statuses",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ListEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthenticated"
                    }
                },
                "x-item": "MaritalStatus"
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "TokenLoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expired_at": {
                    "type": "string"
                }
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "Student_Id": {
                    "type": "integer"
                },
                "Nim": {
                    "type": "string"
                },
                "Register_Number": {
                    "type": "string",
                    "x-nullable": true
                },
                "Full_Name": {
                    "type": "string"
                },
                "Department": {
                    "type": "string",
                    "x-nullable": true
                },
                "Class_Program": {
                    "type": "string",
                    "x-nullable": true
                },
                "Entry_Year": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Entry_Term_Id": {
                    "type": "integer",
                    "x-nullable": true
                }
            }
        },
        "KrsEntry": {
            "type": "object",
            "properties": {
                "Krs_Id": {
                    "type": "integer"
                },
                "Term_Year_Id": {
                    "type": "integer"
                },
                "Course_Id": {
                    "type": "integer"
                },
                "Course_Code": {
                    "type": "string",
                    "x-nullable": true
                },
                "Course_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Sks": {
                    "type": "number"
                },
                "Class_Prog_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Program_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Class_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Name": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "KhsEntry": {
            "type": "object",
            "properties": {
                "Krs_Id": {
                    "type": "integer"
                },
                "Term_Year_Id": {
                    "type": "integer"
                },
                "Course_Id": {
                    "type": "integer"
                },
                "Course_Code": {
                    "type": "string",
                    "x-nullable": true
                },
                "Course_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Sks": {
                    "type": "number"
                },
                "Class_Prog_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Program_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Class_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Grade_Letter": {
                    "type": "string"
                },
                "Weight_Value": {
                    "type": "number"
                },
                "Bnk_Value": {
                    "type": "number"
                }
            }
        },
        "StudentKrs": {
            "type": "object",
            "properties": {
                "Student_Id": {
                    "type": "integer"
                },
                "Full_Name": {
                    "type": "string"
                },
                "Nim": {
                    "type": "string"
                },
                "Department_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Total_Krs": {
                    "type": "integer"
                },
                "Krs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/KrsEntry"
                    }
                }
            }
        },
        "StudentKhs": {
            "type": "object",
            "properties": {
                "Student_Id": {
                    "type": "integer"
                },
                "Full_Name": {
                    "type": "string"
                },
                "Nim": {
                    "type": "string"
                },
                "Department_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Total_Khs": {
                    "type": "integer"
                },
                "Khs": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/KhsEntry"
                    }
                }
            }
        },
        "OfferedCourse": {
            "type": "object",
            "properties": {
                "Offered_Course_Id": {
                    "type": "integer"
                },
                "Department_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Term_Year_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Course_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Id": {
                    "type": "integer",
                    "x-nullable": true
                },
                "Class_Program_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Term_Year_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Start_Date": {
                    "type": "string",
                    "x-nullable": true
                },
                "End_Date": {
                    "type": "string",
                    "x-nullable": true
                },
                "Course_Code": {
                    "type": "string",
                    "x-nullable": true
                },
                "Course_Name": {
                    "type": "string",
                    "x-nullable": true
                },
                "Class_Name": {
                    "type": "string",
                    "x-nullable": true
                }
            }
        },
        "AkmEntry": {
            "type": "object",
            "properties": {
                "term_year_id": {
                    "type": "integer"
                },
                "sks": {
                    "type": "number"
                },
                "sks_kumulatif": {
                    "type": "number"
                },
                "bnk_total": {
                    "type": "number"
                },
                "ipk": {
                    "type": "number"
                },
                "ipk_kumulatif": {
                    "type": "number"
                }
            }
        },
        "StudentAkm": {
            "type": "object",
            "properties": {
                "nama": {
                    "type": "string"
                },
                "nim": {
                    "type": "string"
                },
                "akm": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AkmEntry"
                    }
                }
            }
        },
        "Department": {
            "type": "object",
            "properties": {
                "Department_Id": {
                    "type": "integer"
                },
                "Department_Name": {
                    "type": "string"
                }
            }
        },
        "ClassProgram": {
            "type": "object",
            "properties": {
                "Class_Prog_Id": {
                    "type": "integer"
                },
                "Class_Program_Name": {
                    "type": "string"
                }
            }
        },
        "Religion": {
            "type": "object",
            "properties": {
                "Religion_Id": {
                    "type": "integer"
                },
                "Religion_Name": {
                    "type": "string"
                }
            }
        },
        "MaritalStatus": {
            "type": "object",
            "properties": {
                "Marital_Status_Id": {
                    "type": "integer"
                },
                "Marital_Status_Type": {
                    "type": "string"
                }
            }
        },
        "PageLink": {
            "type": "object",
            "properties": {
                "url": {
                    "type": "string",
                    "x-nullable": true
                },
                "label": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "PageMeta": {
            "type": "object",
            "properties": {
                "current_page": {
                    "type": "integer"
                },
                "first_page_url": {
                    "type": "string"
                },
                "from": {
                    "type": "integer",
                    "x-nullable": true
                },
                "last_page": {
                    "type": "integer"
                },
                "last_page_url": {
                    "type": "string"
                },
                "links": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/PageLink"
                    }
                },
                "next_page_url": {
                    "type": "string",
                    "x-nullable": true
                },
                "path": {
                    "type": "string"
                },
                "per_page": {
                    "type": "integer"
                },
                "prev_page_url": {
                    "type": "string",
                    "x-nullable": true
                },
                "to": {
                    "type": "integer",
                    "x-nullable": true
                },
                "total": {
                    "type": "integer"
                },
                "server_paging": {
                    "type": "boolean"
                }
            }
        },
        "ListEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {
                    "type": "array",
                    "items": {
                        "type": "object"
                    }
                },
                "meta": {
                    "$ref": "#/definitions/PageMeta"
                }
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "error": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
